// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/mortgage-engine/internal/mortgage"
)

// Float returns a pointer to v, for optional fields in literals.
func Float(v float64) *float64 {
	return &v
}

// FindEntry finds a row by payment number in a schedule.
// Returns a pointer to the entry if found, nil otherwise.
func FindEntry(entries []mortgage.AmortizationEntry, paymentNumber int) *mortgage.AmortizationEntry {
	for i := range entries {
		if entries[i].PaymentNumber == paymentNumber {
			return &entries[i]
		}
	}
	return nil
}

// FixedTrack returns a fixed-rate track that has not made any payments.
func FixedTrack(id string, balance, rate float64, months int) mortgage.Track {
	return mortgage.Track{
		ID:              id,
		Name:            "Fixed " + id,
		OriginalAmount:  balance,
		CurrentBalance:  balance,
		Rate:            rate,
		RateType:        "fixed",
		StartDate:       "2024-01-01",
		TotalTermMonths: months,
		RemainingMonths: months,
		Terms:           mortgage.FixedTerms{},
	}
}

// SampleState returns a five-track mortgage with one track of every kind,
// originated on 2024-01-01 with twelve payments made on each track.
func SampleState() mortgage.State {
	return mortgage.State{
		ID:       "MTG-2024-0001",
		Borrower: mortgage.Borrower{Name: "Noa Cohen", ID: "123456782"},
		Details: mortgage.Details{
			OriginalAmount: 1500000,
			Currency:       "ILS",
			StartDate:      "2024-01-01",
			CurrentDate:    "2025-01-01",
		},
		Market: mortgage.MarketConditions{
			CurrentPrimeRate: 0.05,
			CurrentIndex:     103.2,
			BaseIndex:        100.0,
		},
		Tracks: []mortgage.Track{
			{
				ID: "fixed-1", Name: "Fixed unlinked", OriginalAmount: 500000, CurrentBalance: 490000,
				Rate: 0.045, RateType: "fixed", StartDate: "2024-01-01",
				TotalTermMonths: 300, RemainingMonths: 288, PaymentsMade: 12,
				Terms: mortgage.FixedTerms{},
			},
			{
				ID: "prime-1", Name: "Prime", OriginalAmount: 400000, CurrentBalance: 392000,
				Rate: 0.05, RateType: "variable", StartDate: "2024-01-01",
				TotalTermMonths: 240, RemainingMonths: 228, PaymentsMade: 12,
				Terms: mortgage.PrimeTerms{
					Margin: -0.005,
					RateHistory: []mortgage.RateChange{
						{Date: "2024-01-01", PrimeRate: Float(0.06), TotalRate: 0.055},
					},
				},
			},
			{
				ID: "cpi-1", Name: "CPI linked", OriginalAmount: 300000, CurrentBalance: 294000,
				Rate: 0.03, RateType: "variable", StartDate: "2024-01-01",
				TotalTermMonths: 360, RemainingMonths: 348, PaymentsMade: 12,
				Terms: mortgage.IndexLinkedTerms{
					IndexType:           "CPI",
					BaseIndex:           Float(100.0),
					CurrentIndex:        Float(103.2),
					ResetFrequencyYears: 5,
					NextResetDate:       "2029-01-01",
				},
			},
			{
				ID: "grace-1", Name: "Grace", OriginalAmount: 200000, CurrentBalance: 200000,
				Rate: 0.04, RateType: "fixed", StartDate: "2024-01-01",
				TotalTermMonths: 180, RemainingMonths: 168, PaymentsMade: 12,
				Terms: mortgage.GraceTerms{GracePeriodMonths: 24, CurrentPhase: "grace", InterestOnly: true},
			},
			{
				ID: "bridge-1", Name: "Bridge", OriginalAmount: 100000, CurrentBalance: 100000,
				Rate: 0.06, RateType: "fixed", StartDate: "2024-01-01",
				TotalTermMonths: 36, RemainingMonths: 24, PaymentsMade: 12,
				Terms: mortgage.BridgeTerms{BridgePeriodMonths: 24, BalloonPayment: true, MaturityDate: "2027-01-01"},
			},
		},
		CurrentPayment:      mortgage.MonthlyPayment{},
		LastCalculationDate: "2025-01-01",
		AdjustmentTriggers: []mortgage.AdjustmentTrigger{
			{TriggerType: "prime_rate_update", AffectsTracks: []string{"prime-1"}, NextUpdateDate: "2025-02-01"},
			{TriggerType: "cpi_update", AffectsTracks: []string{"cpi-1"}, NextUpdateDate: "2025-01-15"},
		},
	}
}
