package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up above midpoint", 1.2351, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 5368.2157, 5368.22},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
		{"Nearly two cents", 0.019, 0.02},
		{"Half cent to even down", 0.125, 0.12},
		{"Half cent to even up", 0.375, 0.38},
		{"Negative half cent", -0.125, -0.12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Exactly zero", 0.0, true},
		{"Very small negative", -0.001, true},
		{"Exactly tolerance", 0.01, true},
		{"Just above tolerance", 0.02, false},
		{"Large positive", 100.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsZero(tt.input); result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.004, 100.0, 0.01) {
		t.Errorf("WithinTolerance(100.004, 100.0, 0.01) = false, expected true")
	}
	if WithinTolerance(100.5, 100.0, 0.01) {
		t.Errorf("WithinTolerance(100.5, 100.0, 0.01) = true, expected false")
	}
}

func TestClampNonNegative(t *testing.T) {
	tests := map[float64]float64{
		-0.0000001: 0,
		-500:       0,
		0:          0,
		12.5:       12.5,
	}
	for input, expected := range tests {
		if got := ClampNonNegative(input); got != expected {
			t.Errorf("ClampNonNegative(%v) = %v, expected %v", input, got, expected)
		}
	}
}
