// Package loans provides the annuity arithmetic shared by every track type.
package loans

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-engine/pkg/constants"
)

// ErrInvalidPeriods is returned when a payment is requested over zero or a
// negative number of periods.
var ErrInvalidPeriods = errors.New("number of periods must be positive")

// Payment calculates the fixed periodic payment that fully amortizes principal
// over periods at the given periodic rate. A zero rate amortizes in equal
// principal installments.
func Payment(periodicRate float64, periods int, principal float64) (float64, error) {
	if periods <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPeriods, periods)
	}
	if periodicRate == 0 {
		return principal / float64(periods), nil
	}

	discountFactor := 1.00 - math.Pow(1.00+periodicRate, -float64(periods))
	return principal * periodicRate / discountFactor, nil
}

// MonthlyPayment calculates the monthly payment for a nominal annual rate
// expressed as a fraction (0.05 for 5%).
func MonthlyPayment(annualRate float64, termMonths int, principal float64) (float64, error) {
	return Payment(MonthlyRate(annualRate), termMonths, principal)
}

// MonthlyRate converts a nominal annual rate to the periodic monthly rate by
// simple division.
func MonthlyRate(annualRate float64) float64 {
	return annualRate / constants.MonthsPerYear
}

// MonthlyInterest calculates the interest portion accrued on balance for one month.
func MonthlyInterest(balance, annualRate float64) float64 {
	return balance * MonthlyRate(annualRate)
}
