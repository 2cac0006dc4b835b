package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/iwvelando/mortgage-engine/internal/mortgage"
	"github.com/iwvelando/mortgage-engine/pkg/datetime"
	"github.com/iwvelando/mortgage-engine/pkg/loans"
	"github.com/iwvelando/mortgage-engine/pkg/mathutil"
	"go.uber.org/zap"
)

// GenerateSchedule produces the amortization table of one track for up to
// horizon months starting at startDate (YYYY-MM-DD). Payment numbers continue
// from the payments already made. Bridge and grace-period tracks use their own
// algorithms; every other kind, including unrecognized ones, follows the
// standard annuity schedule.
func (e *Engine) GenerateSchedule(track mortgage.Track, market mortgage.MarketConditions, startDate string, horizon int) ([]mortgage.AmortizationEntry, error) {
	start, err := datetime.ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	if track.RemainingMonths <= 0 {
		return nil, nil
	}

	rate, balance, err := e.effectiveTerms(track, market)
	if err != nil {
		return nil, err
	}

	var entries []mortgage.AmortizationEntry
	switch terms := track.Terms.(type) {
	case mortgage.BridgeTerms:
		entries = bridgeSchedule(track, terms, rate, balance, start, horizon)
	case mortgage.GraceTerms:
		entries, err = graceSchedule(track, terms, rate, balance, start, horizon)
	case mortgage.UnrecognizedTerms:
		e.logger.Warn(fmt.Sprintf("track %s has unrecognized type %q, using the standard schedule", track.ID, terms.Label),
			zap.String("op", "engine.GenerateSchedule"),
		)
		entries, err = standardSchedule(track, rate, balance, start, horizon)
	default:
		entries, err = standardSchedule(track, rate, balance, start, horizon)
	}
	if err != nil {
		return nil, err
	}

	e.logger.Debug("generated track schedule",
		zap.String("op", "engine.GenerateSchedule"),
		zap.String("track", track.ID),
		zap.String("type", string(track.Kind())),
		zap.Int("rows", len(entries)),
	)
	return entries, nil
}

// standardSchedule amortizes balance with one fixed payment over the track's
// remaining months.
func standardSchedule(track mortgage.Track, rate, balance float64, start time.Time, horizon int) ([]mortgage.AmortizationEntry, error) {
	payment, err := loans.MonthlyPayment(rate, track.RemainingMonths, balance)
	if err != nil {
		return nil, fmt.Errorf("track %s: %w", track.ID, err)
	}
	payment = math.Abs(payment)

	n := min(horizon, track.RemainingMonths)
	entries := make([]mortgage.AmortizationEntry, 0, max(n, 0))
	for i := 0; i < n; i++ {
		interest := loans.MonthlyInterest(balance, rate)
		principal := payment - interest
		balance -= principal

		entries = append(entries, mortgage.AmortizationEntry{
			PaymentNumber: track.PaymentsMade + i + 1,
			Date:          datetime.FormatDate(datetime.AddMonths(start, i)),
			Payment:       payment,
			Principal:     principal,
			Interest:      interest,
			Balance:       mathutil.ClampNonNegative(balance),
		})
	}
	return entries, nil
}

// graceSchedule pays interest only for the grace months and then amortizes
// the untouched balance. The post-grace payment is computed once over
// TotalTermMonths - GracePeriodMonths periods regardless of payments made.
func graceSchedule(track mortgage.Track, terms mortgage.GraceTerms, rate, balance float64, start time.Time, horizon int) ([]mortgage.AmortizationEntry, error) {
	graceMonths := terms.GracePeriodMonths
	n := min(horizon, track.RemainingMonths)
	entries := make([]mortgage.AmortizationEntry, 0, max(n, 0))

	var payment float64
	amortizing := false
	for i := 0; i < n; i++ {
		interest := loans.MonthlyInterest(balance, rate)
		entry := mortgage.AmortizationEntry{
			PaymentNumber: track.PaymentsMade + i + 1,
			Date:          datetime.FormatDate(datetime.AddMonths(start, i)),
			Interest:      interest,
		}

		if i < graceMonths {
			entry.Payment = interest
			entry.Balance = balance
		} else {
			if !amortizing {
				p, err := loans.MonthlyPayment(rate, track.TotalTermMonths-graceMonths, balance)
				if err != nil {
					return nil, fmt.Errorf("track %s: post-grace term: %w", track.ID, err)
				}
				payment = math.Abs(p)
				amortizing = true
			}
			principal := payment - interest
			balance -= principal

			entry.Payment = payment
			entry.Principal = principal
			entry.Balance = mathutil.ClampNonNegative(balance)
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

// bridgeSchedule pays interest only until the last bridge month, which also
// repays the whole balance. The bridge period defaults to the full term.
func bridgeSchedule(track mortgage.Track, terms mortgage.BridgeTerms, rate, balance float64, start time.Time, horizon int) []mortgage.AmortizationEntry {
	bridgeMonths := terms.BridgePeriodMonths
	if bridgeMonths == 0 {
		bridgeMonths = track.TotalTermMonths
	}
	interest := loans.MonthlyInterest(balance, rate)

	n := min(horizon, bridgeMonths)
	entries := make([]mortgage.AmortizationEntry, 0, max(n, 0))
	for i := 0; i < n; i++ {
		entry := mortgage.AmortizationEntry{
			PaymentNumber: track.PaymentsMade + i + 1,
			Date:          datetime.FormatDate(datetime.AddMonths(start, i)),
			Payment:       interest,
			Interest:      interest,
			Balance:       balance,
		}
		if i == bridgeMonths-1 {
			// Balloon
			entry.Payment = interest + balance
			entry.Principal = balance
			entry.Balance = 0
		}

		entries = append(entries, entry)
	}
	return entries
}
