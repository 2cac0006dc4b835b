package engine

import (
	"context"
	"fmt"

	"github.com/iwvelando/mortgage-engine/internal/mortgage"
	"github.com/iwvelando/mortgage-engine/pkg/loans"
	"go.uber.org/zap"
)

// EvaluateTrack computes the payment, principal and interest of a track for
// the current period. A track with no remaining months is fully paid and
// yields a zero breakdown.
func (e *Engine) EvaluateTrack(track mortgage.Track, market mortgage.MarketConditions) (mortgage.PaymentBreakdown, error) {
	breakdown := mortgage.PaymentBreakdown{TrackID: track.ID, TrackName: track.Name}
	if track.RemainingMonths <= 0 {
		return breakdown, nil
	}

	rate, balance, err := e.effectiveTerms(track, market)
	if err != nil {
		return breakdown, err
	}

	if grace, ok := track.Terms.(mortgage.GraceTerms); ok && grace.InterestOnly {
		interest := loans.MonthlyInterest(balance, rate)
		breakdown.Payment = interest
		breakdown.Interest = interest
		return breakdown, nil
	}

	payment, err := loans.MonthlyPayment(rate, track.RemainingMonths, balance)
	if err != nil {
		return breakdown, fmt.Errorf("track %s: %w", track.ID, err)
	}
	interest := loans.MonthlyInterest(balance, rate)

	breakdown.Payment = payment
	breakdown.Interest = interest
	breakdown.Principal = payment - interest
	return breakdown, nil
}

// CurrentPayment evaluates every track and sums the payments into the
// combined monthly payment. The breakdown keeps the order of tracks.
func (e *Engine) CurrentPayment(ctx context.Context, tracks []mortgage.Track, market mortgage.MarketConditions) (mortgage.MonthlyPayment, error) {
	breakdown := make([]mortgage.PaymentBreakdown, len(tracks))
	err := e.forEachTrack(ctx, len(tracks), func(i int) error {
		b, err := e.EvaluateTrack(tracks[i], market)
		if err != nil {
			return err
		}
		breakdown[i] = b
		return nil
	})
	if err != nil {
		return mortgage.MonthlyPayment{}, err
	}

	total := 0.0
	for _, b := range breakdown {
		total += b.Payment
	}

	e.logger.Debug("evaluated current payment",
		zap.String("op", "engine.CurrentPayment"),
		zap.Int("tracks", len(tracks)),
		zap.Float64("total", total),
	)
	return mortgage.MonthlyPayment{Total: total, Breakdown: breakdown}, nil
}
