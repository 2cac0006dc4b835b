package engine

import (
	"context"
	"fmt"

	"github.com/iwvelando/mortgage-engine/internal/mortgage"
	"github.com/iwvelando/mortgage-engine/pkg/datetime"
	"go.uber.org/zap"
)

// ApplyMarketUpdate applies the market movements in update to state and
// recomputes the current payment and the combined schedule for every
// remaining month. It returns a new state and a log of the market fields that
// changed; state itself is left untouched. Track balances, remaining months
// and payments made are not advanced.
func (e *Engine) ApplyMarketUpdate(ctx context.Context, state mortgage.State, update mortgage.MarketUpdate) (mortgage.State, mortgage.ChangeLog, error) {
	if _, err := datetime.ParseDate(update.CalculationDate); err != nil {
		return mortgage.State{}, nil, fmt.Errorf("calculation date: %w", err)
	}

	changes := mortgage.ChangeLog{}
	market := state.Market
	if update.NewPrimeRate != nil {
		changes[mortgage.ChangePrimeRate] = mortgage.Change{Old: market.CurrentPrimeRate, New: *update.NewPrimeRate}
		market.CurrentPrimeRate = *update.NewPrimeRate
	}
	if update.NewIndex != nil {
		changes[mortgage.ChangeIndex] = mortgage.Change{Old: market.CurrentIndex, New: *update.NewIndex}
		market.CurrentIndex = *update.NewIndex
	}

	payment, err := e.CurrentPayment(ctx, state.Tracks, market)
	if err != nil {
		return mortgage.State{}, nil, fmt.Errorf("failed to evaluate current payment: %w", err)
	}

	horizon := 0
	for _, track := range state.Tracks {
		horizon = max(horizon, track.RemainingMonths)
	}

	table, err := e.CombineSchedules(ctx, state.Tracks, market, update.CalculationDate, horizon)
	if err != nil {
		return mortgage.State{}, nil, fmt.Errorf("failed to generate amortization table: %w", err)
	}

	next := state.Clone()
	next.Market = market
	next.CurrentPayment = payment
	next.LastCalculationDate = update.CalculationDate
	next.AmortizationTable = table

	e.logger.Info("mortgage state updated",
		zap.String("op", "engine.ApplyMarketUpdate"),
		zap.String("mortgage", state.ID),
		zap.Int("changes", len(changes)),
		zap.Float64("total_payment", payment.Total),
		zap.Int("rows", len(table)),
	)
	return next, changes, nil
}
