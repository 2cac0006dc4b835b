package adapters

import (
	"github.com/iwvelando/mortgage-engine/internal/mortgage"
	"github.com/iwvelando/mortgage-engine/pkg/constants"
)

// ToState converts a wire document into a mortgage state. A track type
// outside the known set becomes mortgage.UnrecognizedTerms; an empty type is
// treated as fixed.
func ToState(doc MortgageState) mortgage.State {
	state := mortgage.State{
		ID:       doc.MortgageID,
		Borrower: mortgage.Borrower{Name: doc.Borrower.Name, ID: doc.Borrower.ID},
		Details: mortgage.Details{
			OriginalAmount: doc.MortgageDetails.OriginalAmount,
			Currency:       doc.MortgageDetails.Currency,
			StartDate:      doc.MortgageDetails.StartDate,
			CurrentDate:    doc.MortgageDetails.CurrentDate,
		},
		Market: mortgage.MarketConditions{
			CurrentPrimeRate: doc.MarketConditions.CurrentPrimeRate,
			CurrentIndex:     doc.MarketConditions.CurrentCPIIndex,
			BaseIndex:        doc.MarketConditions.BaseCPIIndex,
		},
		CurrentPayment: mortgage.MonthlyPayment{
			Total: doc.CurrentMonthlyPayment.TotalPayment,
		},
		LastCalculationDate: doc.LastCalculationDate,
	}
	if state.Details.Currency == "" {
		state.Details.Currency = constants.DefaultCurrency
	}

	if doc.Tracks != nil {
		state.Tracks = make([]mortgage.Track, 0, len(doc.Tracks))
		for _, t := range doc.Tracks {
			state.Tracks = append(state.Tracks, ToTrack(t))
		}
	}
	if doc.CurrentMonthlyPayment.Breakdown != nil {
		state.CurrentPayment.Breakdown = make([]mortgage.PaymentBreakdown, 0, len(doc.CurrentMonthlyPayment.Breakdown))
		for _, b := range doc.CurrentMonthlyPayment.Breakdown {
			state.CurrentPayment.Breakdown = append(state.CurrentPayment.Breakdown, mortgage.PaymentBreakdown(b))
		}
	}
	if doc.NextAdjustmentTriggers != nil {
		state.AdjustmentTriggers = make([]mortgage.AdjustmentTrigger, 0, len(doc.NextAdjustmentTriggers))
		for _, t := range doc.NextAdjustmentTriggers {
			state.AdjustmentTriggers = append(state.AdjustmentTriggers, mortgage.AdjustmentTrigger{
				TriggerType:    t.TriggerType,
				AffectsTracks:  append([]string(nil), t.AffectsTracks...),
				NextUpdateDate: deref(t.NextUpdateDate),
				NextResetDate:  deref(t.NextResetDate),
				MaturityDate:   deref(t.MaturityDate),
				EndDate:        deref(t.EndDate),
			})
		}
	}
	if doc.AmortizationTable != nil {
		state.AmortizationTable = make([]mortgage.AmortizationEntry, 0, len(doc.AmortizationTable))
		for _, e := range doc.AmortizationTable {
			state.AmortizationTable = append(state.AmortizationTable, mortgage.AmortizationEntry(e))
		}
	}
	return state
}

// ToTrack converts a flat wire track into a track with kind-specific terms.
func ToTrack(doc MortgageTrack) mortgage.Track {
	track := mortgage.Track{
		ID:              doc.TrackID,
		Name:            doc.TrackName,
		OriginalAmount:  doc.OriginalAmount,
		CurrentBalance:  doc.CurrentBalance,
		Rate:            doc.Rate,
		RateType:        doc.RateType,
		StartDate:       doc.StartDate,
		TotalTermMonths: doc.TotalTermMonths,
		RemainingMonths: doc.RemainingMonths,
		PaymentsMade:    doc.PaymentsMade,
	}

	kind := mortgage.Kind(doc.TrackType)
	if kind == "" {
		kind = mortgage.KindFixed
	}
	if !kind.Known() {
		track.Terms = mortgage.UnrecognizedTerms{Label: doc.TrackType}
		return track
	}

	switch kind {
	case mortgage.KindFixed:
		track.Terms = mortgage.FixedTerms{}
	case mortgage.KindVariablePrime:
		track.Terms = mortgage.PrimeTerms{
			Margin:      deref(doc.Margin),
			BaseRate:    copyPtr(doc.BaseRate),
			CurrentRate: copyPtr(doc.CurrentRate),
			RateHistory: toHistory(doc.RateChangeHistory),
		}
	case mortgage.KindIndexLinked:
		track.Terms = mortgage.IndexLinkedTerms{
			IndexType:           deref(doc.IndexType),
			BaseIndex:           copyPtr(doc.BaseCPI),
			CurrentIndex:        copyPtr(doc.CurrentCPI),
			AdjustmentFactor:    copyPtr(doc.CPIAdjustmentFactor),
			ResetFrequencyYears: deref(doc.RateResetFrequencyYears),
			NextResetDate:       deref(doc.NextRateResetDate),
			IndexHistory:        toHistory(doc.CPIUpdateHistory),
		}
	case mortgage.KindGracePeriod:
		track.Terms = mortgage.GraceTerms{
			GracePeriodMonths: deref(doc.GracePeriodMonths),
			CurrentPhase:      deref(doc.CurrentPhase),
			InterestOnly:      deref(doc.IsInterestOnly),
		}
	case mortgage.KindBridge:
		track.Terms = mortgage.BridgeTerms{
			BridgePeriodMonths: deref(doc.BridgePeriodMonths),
			BalloonPayment:     deref(doc.HasBalloonPayment),
			MaturityDate:       deref(doc.MaturityDate),
		}
	}
	return track
}

// FromState converts a mortgage state into its wire document.
func FromState(state mortgage.State) MortgageState {
	doc := MortgageState{
		MortgageID: state.ID,
		Borrower:   Borrower{Name: state.Borrower.Name, ID: state.Borrower.ID},
		MortgageDetails: MortgageDetails{
			OriginalAmount: state.Details.OriginalAmount,
			Currency:       state.Details.Currency,
			StartDate:      state.Details.StartDate,
			CurrentDate:    state.Details.CurrentDate,
		},
		MarketConditions: MarketConditions{
			CurrentPrimeRate: state.Market.CurrentPrimeRate,
			CurrentCPIIndex:  state.Market.CurrentIndex,
			BaseCPIIndex:     state.Market.BaseIndex,
		},
		Tracks: make([]MortgageTrack, 0, len(state.Tracks)),
		CurrentMonthlyPayment: MonthlyPayment{
			TotalPayment: state.CurrentPayment.Total,
			Breakdown:    make([]PaymentBreakdown, 0, len(state.CurrentPayment.Breakdown)),
		},
		LastCalculationDate:    state.LastCalculationDate,
		NextAdjustmentTriggers: make([]AdjustmentTrigger, 0, len(state.AdjustmentTriggers)),
	}

	for _, t := range state.Tracks {
		doc.Tracks = append(doc.Tracks, FromTrack(t))
	}
	for _, b := range state.CurrentPayment.Breakdown {
		doc.CurrentMonthlyPayment.Breakdown = append(doc.CurrentMonthlyPayment.Breakdown, PaymentBreakdown(b))
	}
	for _, t := range state.AdjustmentTriggers {
		affects := t.AffectsTracks
		if affects == nil {
			affects = []string{}
		}
		doc.NextAdjustmentTriggers = append(doc.NextAdjustmentTriggers, AdjustmentTrigger{
			TriggerType:    t.TriggerType,
			AffectsTracks:  append([]string(nil), affects...),
			NextUpdateDate: optional(t.NextUpdateDate),
			NextResetDate:  optional(t.NextResetDate),
			MaturityDate:   optional(t.MaturityDate),
			EndDate:        optional(t.EndDate),
		})
	}
	if state.AmortizationTable != nil {
		doc.AmortizationTable = FromEntries(state.AmortizationTable)
	}
	return doc
}

// FromTrack converts a track into its flat wire form, setting only the
// optional fields of the track's kind.
func FromTrack(track mortgage.Track) MortgageTrack {
	doc := MortgageTrack{
		TrackID:         track.ID,
		TrackName:       track.Name,
		TrackType:       string(track.Kind()),
		OriginalAmount:  track.OriginalAmount,
		CurrentBalance:  track.CurrentBalance,
		Rate:            track.Rate,
		RateType:        track.RateType,
		StartDate:       track.StartDate,
		TotalTermMonths: track.TotalTermMonths,
		RemainingMonths: track.RemainingMonths,
		PaymentsMade:    track.PaymentsMade,
	}

	switch terms := track.Terms.(type) {
	case mortgage.PrimeTerms:
		doc.Margin = &terms.Margin
		doc.BaseRate = copyPtr(terms.BaseRate)
		doc.CurrentRate = copyPtr(terms.CurrentRate)
		doc.RateChangeHistory = fromHistory(terms.RateHistory)
	case mortgage.IndexLinkedTerms:
		doc.IndexType = optional(terms.IndexType)
		doc.BaseCPI = copyPtr(terms.BaseIndex)
		doc.CurrentCPI = copyPtr(terms.CurrentIndex)
		doc.CPIAdjustmentFactor = copyPtr(terms.AdjustmentFactor)
		if terms.ResetFrequencyYears != 0 {
			doc.RateResetFrequencyYears = &terms.ResetFrequencyYears
		}
		doc.NextRateResetDate = optional(terms.NextResetDate)
		doc.CPIUpdateHistory = fromHistory(terms.IndexHistory)
	case mortgage.GraceTerms:
		doc.GracePeriodMonths = &terms.GracePeriodMonths
		doc.CurrentPhase = optional(terms.CurrentPhase)
		doc.IsInterestOnly = &terms.InterestOnly
	case mortgage.BridgeTerms:
		doc.BridgePeriodMonths = &terms.BridgePeriodMonths
		doc.HasBalloonPayment = &terms.BalloonPayment
		doc.MaturityDate = optional(terms.MaturityDate)
	}
	return doc
}

// FromEntries converts amortization rows into their wire form. The result is
// never nil.
func FromEntries(entries []mortgage.AmortizationEntry) []AmortizationEntry {
	out := make([]AmortizationEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, AmortizationEntry(e))
	}
	return out
}

// ToMarketUpdate converts monthly changes into a market update.
func ToMarketUpdate(doc MonthlyChanges) mortgage.MarketUpdate {
	return mortgage.MarketUpdate{
		NewPrimeRate:    copyPtr(doc.NewPrimeRate),
		NewIndex:        copyPtr(doc.NewCPIIndex),
		CalculationDate: doc.CalculationDate,
	}
}

// FromChangeLog converts a change log into the changes_applied map. The
// result is never nil.
func FromChangeLog(changes mortgage.ChangeLog) map[string]Change {
	out := make(map[string]Change, len(changes))
	for key, c := range changes {
		out[key] = Change(c)
	}
	return out
}

func toHistory(history []RateChangeHistory) []mortgage.RateChange {
	if history == nil {
		return nil
	}
	out := make([]mortgage.RateChange, 0, len(history))
	for _, h := range history {
		out = append(out, mortgage.RateChange{
			Date:             h.Date,
			PrimeRate:        copyPtr(h.PrimeRate),
			TotalRate:        h.TotalRate,
			Index:            copyPtr(h.CPIIndex),
			AdjustmentFactor: copyPtr(h.AdjustmentFactor),
		})
	}
	return out
}

func fromHistory(history []mortgage.RateChange) []RateChangeHistory {
	if history == nil {
		return nil
	}
	out := make([]RateChangeHistory, 0, len(history))
	for _, h := range history {
		out = append(out, RateChangeHistory{
			Date:             h.Date,
			PrimeRate:        copyPtr(h.PrimeRate),
			TotalRate:        h.TotalRate,
			CPIIndex:         copyPtr(h.Index),
			AdjustmentFactor: copyPtr(h.AdjustmentFactor),
		})
	}
	return out
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
