package testutil

import (
	"testing"

	"github.com/iwvelando/mortgage-engine/internal/mortgage"
)

func TestFindEntry(t *testing.T) {
	entries := []mortgage.AmortizationEntry{
		{PaymentNumber: 13, Payment: 100},
		{PaymentNumber: 14, Payment: 200},
		{PaymentNumber: 15, Payment: 300},
	}

	tests := []struct {
		name          string
		paymentNumber int
		expectFound   bool
		expectPayment float64
	}{
		{name: "first row", paymentNumber: 13, expectFound: true, expectPayment: 100},
		{name: "last row", paymentNumber: 15, expectFound: true, expectPayment: 300},
		{name: "before schedule", paymentNumber: 1, expectFound: false},
		{name: "after schedule", paymentNumber: 16, expectFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindEntry(entries, tt.paymentNumber)
			if (got != nil) != tt.expectFound {
				t.Fatalf("FindEntry(%d) found = %v, expected %v", tt.paymentNumber, got != nil, tt.expectFound)
			}
			if got != nil && got.Payment != tt.expectPayment {
				t.Errorf("FindEntry(%d).Payment = %v, expected %v", tt.paymentNumber, got.Payment, tt.expectPayment)
			}
		})
	}
}

func TestSampleState(t *testing.T) {
	state := SampleState()

	kinds := map[mortgage.Kind]bool{}
	for _, track := range state.Tracks {
		kinds[track.Kind()] = true
	}
	for _, kind := range []mortgage.Kind{mortgage.KindFixed, mortgage.KindVariablePrime, mortgage.KindIndexLinked, mortgage.KindGracePeriod, mortgage.KindBridge} {
		if !kinds[kind] {
			t.Errorf("SampleState() has no %s track", kind)
		}
	}

	a, b := SampleState(), SampleState()
	a.Tracks[0].CurrentBalance = 1
	if b.Tracks[0].CurrentBalance == 1 {
		t.Error("SampleState() returned shared tracks")
	}
}
