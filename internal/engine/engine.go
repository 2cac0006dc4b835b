// Package engine computes current payments and amortization schedules for
// multi-track mortgages and applies market updates to mortgage states.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/iwvelando/mortgage-engine/internal/mortgage"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidBaseIndex is returned when an index-linked track is evaluated
// against market conditions whose base index is not positive.
var ErrInvalidBaseIndex = errors.New("base index must be positive")

// Engine evaluates tracks and combines their schedules. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	logger   *zap.Logger
	parallel bool
}

// NewEngine creates a new engine. When parallel is set, per-track work within
// one call fans out to goroutines and joins before aggregation.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger, parallel bool) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger, parallel: parallel}
}

// effectiveTerms resolves the annual rate and balance a track amortizes on
// under the given market conditions.
func (e *Engine) effectiveTerms(track mortgage.Track, market mortgage.MarketConditions) (rate, balance float64, err error) {
	rate = track.Rate
	balance = track.CurrentBalance

	switch track.Terms.(type) {
	case mortgage.PrimeTerms:
		rate = market.CurrentPrimeRate
	case mortgage.IndexLinkedTerms:
		balance, err = IndexedBalance(track, market)
	}
	return rate, balance, err
}

// IndexedBalance scales the track's proportional remaining balance,
// CurrentBalance / OriginalAmount, by the cumulative index ratio since
// origination and re-expresses it in currency. When the index has not moved
// the result is exactly CurrentBalance.
func IndexedBalance(track mortgage.Track, market mortgage.MarketConditions) (float64, error) {
	if market.BaseIndex <= 0 {
		return 0, fmt.Errorf("track %s: %w: got %v", track.ID, ErrInvalidBaseIndex, market.BaseIndex)
	}
	return track.CurrentBalance * market.IndexRatio(), nil
}

// forEachTrack runs fn for every track index, concurrently when the engine is
// parallel, and returns the first error.
func (e *Engine) forEachTrack(ctx context.Context, n int, fn func(i int) error) error {
	if !e.parallel {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}
	return eg.Wait()
}
