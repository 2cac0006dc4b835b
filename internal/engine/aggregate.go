package engine

import (
	"context"
	"sort"

	"github.com/iwvelando/mortgage-engine/internal/mortgage"
	"github.com/iwvelando/mortgage-engine/pkg/mathutil"
	"go.uber.org/zap"
)

// CombineSchedules generates the table of every track and merges them into
// one calendar keyed by payment number.
func (e *Engine) CombineSchedules(ctx context.Context, tracks []mortgage.Track, market mortgage.MarketConditions, startDate string, horizon int) ([]mortgage.AmortizationEntry, error) {
	tables := make([][]mortgage.AmortizationEntry, len(tracks))
	err := e.forEachTrack(ctx, len(tracks), func(i int) error {
		table, err := e.GenerateSchedule(tracks[i], market, startDate, horizon)
		if err != nil {
			return err
		}
		tables[i] = table
		return nil
	})
	if err != nil {
		return nil, err
	}

	combined := Combine(tables)
	e.logger.Debug("combined track schedules",
		zap.String("op", "engine.CombineSchedules"),
		zap.Int("tracks", len(tracks)),
		zap.Int("horizon", horizon),
		zap.Int("rows", len(combined)),
	)
	return combined, nil
}

// Combine sums the rows of several tables that share a payment number. The
// date of a merged row comes from the first table contributing to it. Amounts
// are rounded to cents only after summing.
func Combine(tables [][]mortgage.AmortizationEntry) []mortgage.AmortizationEntry {
	rows := make(map[int]*mortgage.AmortizationEntry)
	for _, table := range tables {
		for _, entry := range table {
			row, ok := rows[entry.PaymentNumber]
			if !ok {
				row = &mortgage.AmortizationEntry{PaymentNumber: entry.PaymentNumber, Date: entry.Date}
				rows[entry.PaymentNumber] = row
			}
			row.Payment += entry.Payment
			row.Principal += entry.Principal
			row.Interest += entry.Interest
			row.Balance += entry.Balance
		}
	}

	numbers := make([]int, 0, len(rows))
	for number := range rows {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)

	combined := make([]mortgage.AmortizationEntry, 0, len(numbers))
	for _, number := range numbers {
		row := rows[number]
		combined = append(combined, mortgage.AmortizationEntry{
			PaymentNumber: row.PaymentNumber,
			Date:          row.Date,
			Payment:       mathutil.Round(row.Payment),
			Principal:     mathutil.Round(row.Principal),
			Interest:      mathutil.Round(row.Interest),
			Balance:       mathutil.Round(row.Balance),
		})
	}
	return combined
}
