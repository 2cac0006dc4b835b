package format

import "testing"

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "0.00"},
		{1.005, "1.00"},
		{999.99, "999.99"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
		{-1234.5, "-1,234.50"},
		{-0.001, "0.00"},
	}

	for _, tt := range tests {
		if got := NumericCurrency(tt.amount); got != tt.expected {
			t.Errorf("NumericCurrency(%v) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		amount   float64
		code     string
		expected string
	}{
		{1234.5, "ILS", "₪1,234.50"},
		{-1234.5, "ILS", "-₪1,234.50"},
		{10, "usd", "$10.00"},
		{10, "CHF", "10.00 CHF"},
		{10, "", "10.00"},
	}

	for _, tt := range tests {
		if got := Currency(tt.amount, tt.code); got != tt.expected {
			t.Errorf("Currency(%v, %q) = %q, expected %q", tt.amount, tt.code, got, tt.expected)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(0.0475); got != "4.75%" {
		t.Errorf("Percent(0.0475) = %q, expected 4.75%%", got)
	}
}
