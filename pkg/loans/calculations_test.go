package loans

import (
	"errors"
	"math"
	"testing"
)

func TestPayment(t *testing.T) {
	tests := []struct {
		name         string
		periodicRate float64
		periods      int
		principal    float64
		expected     float64
		tolerance    float64
	}{
		{
			name:         "Zero rate equal amortization",
			periodicRate: 0,
			periods:      12,
			principal:    120000,
			expected:     10000,
			tolerance:    0,
		},
		{
			name:         "Standard 30-year mortgage at 5%",
			periodicRate: 0.05 / 12,
			periods:      360,
			principal:    1000000,
			expected:     5368.22,
			tolerance:    0.01,
		},
		{
			name:         "Reference 30-year mortgage at 4.5%",
			periodicRate: 0.045 / 12,
			periods:      360,
			principal:    175000,
			expected:     886.70,
			tolerance:    0.01,
		},
		{
			name:         "Single period repays principal plus interest",
			periodicRate: 0.01,
			periods:      1,
			principal:    1000,
			expected:     1010,
			tolerance:    0.000001,
		},
		{
			name:         "Zero principal",
			periodicRate: 0.004,
			periods:      120,
			principal:    0,
			expected:     0,
			tolerance:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Payment(tt.periodicRate, tt.periods, tt.principal)
			if err != nil {
				t.Fatalf("Payment() error = %v", err)
			}
			if math.Abs(result-tt.expected) > tt.tolerance {
				t.Errorf("Payment() = %.4f, expected %.4f", result, tt.expected)
			}
		})
	}
}

func TestPaymentInvalidPeriods(t *testing.T) {
	tests := []struct {
		name         string
		periodicRate float64
		periods      int
	}{
		{"Zero periods with zero rate", 0, 0},
		{"Zero periods with positive rate", 0.004, 0},
		{"Negative periods", 0.004, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Payment(tt.periodicRate, tt.periods, 100000)
			if !errors.Is(err, ErrInvalidPeriods) {
				t.Errorf("Payment() error = %v, expected ErrInvalidPeriods", err)
			}
		})
	}
}

func TestMonthlyPayment(t *testing.T) {
	monthly, err := MonthlyPayment(0.05, 360, 1000000)
	if err != nil {
		t.Fatalf("MonthlyPayment() error = %v", err)
	}
	periodic, err := Payment(0.05/12, 360, 1000000)
	if err != nil {
		t.Fatalf("Payment() error = %v", err)
	}
	if monthly != periodic {
		t.Errorf("MonthlyPayment() = %v, expected %v", monthly, periodic)
	}
}

func TestMonthlyInterest(t *testing.T) {
	tests := []struct {
		name       string
		balance    float64
		annualRate float64
		expected   float64
	}{
		{"Standard mortgage interest", 200000, 0.06, 1000.0},
		{"Bridge loan interest", 500000, 0.06, 2500.0},
		{"Zero interest", 10000, 0.0, 0.0},
		{"Very small balance", 100, 0.06, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyInterest(tt.balance, tt.annualRate)
			if math.Abs(result-tt.expected) > 0.000001 {
				t.Errorf("MonthlyInterest() = %.6f, expected %.6f", result, tt.expected)
			}
		})
	}
}
