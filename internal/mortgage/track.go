// Package mortgage defines the mortgage state value objects handed to the
// calculation engine.
package mortgage

// Kind identifies the rate regime of a track.
type Kind string

const (
	KindFixed         Kind = "fixed"
	KindVariablePrime Kind = "variable_prime"
	KindIndexLinked   Kind = "index_linked_variable"
	KindGracePeriod   Kind = "grace_period"
	KindBridge        Kind = "bridge"
)

// Known reports whether k is one of the five recognized track kinds.
func (k Kind) Known() bool {
	switch k {
	case KindFixed, KindVariablePrime, KindIndexLinked, KindGracePeriod, KindBridge:
		return true
	}
	return false
}

// Track is one independently amortizing repayment stream within a mortgage.
type Track struct {
	ID              string
	Name            string
	OriginalAmount  float64
	CurrentBalance  float64
	Rate            float64 // nominal annual rate as a fraction
	RateType        string
	StartDate       string
	TotalTermMonths int
	RemainingMonths int
	PaymentsMade    int

	// Terms holds the fields specific to the track's kind. A nil Terms is
	// treated as FixedTerms.
	Terms Terms
}

// Kind returns the kind of the track's terms.
func (t Track) Kind() Kind {
	if t.Terms == nil {
		return KindFixed
	}
	return t.Terms.Kind()
}

// Clone returns a deep copy of the track.
func (t Track) Clone() Track {
	if t.Terms != nil {
		t.Terms = t.Terms.clone()
	}
	return t
}

// Terms is the closed set of kind-specific track attributes. The concrete
// types are FixedTerms, PrimeTerms, IndexLinkedTerms, GraceTerms, BridgeTerms
// and UnrecognizedTerms.
type Terms interface {
	Kind() Kind
	clone() Terms
}

// FixedTerms marks a fixed-rate track; it carries no extra attributes.
type FixedTerms struct{}

func (FixedTerms) Kind() Kind { return KindFixed }
func (f FixedTerms) clone() Terms { return f }

// PrimeTerms holds the attributes of a prime-linked track.
type PrimeTerms struct {
	Margin      float64
	BaseRate    *float64
	CurrentRate *float64
	RateHistory []RateChange
}

func (PrimeTerms) Kind() Kind { return KindVariablePrime }

func (p PrimeTerms) clone() Terms {
	p.BaseRate = cloneFloat(p.BaseRate)
	p.CurrentRate = cloneFloat(p.CurrentRate)
	p.RateHistory = cloneHistory(p.RateHistory)
	return p
}

// IndexLinkedTerms holds the attributes of a CPI-linked track. The reset
// fields are informational; no calculation reads them.
type IndexLinkedTerms struct {
	IndexType           string
	BaseIndex           *float64
	CurrentIndex        *float64
	AdjustmentFactor    *float64
	ResetFrequencyYears int
	NextResetDate       string
	IndexHistory        []RateChange
}

func (IndexLinkedTerms) Kind() Kind { return KindIndexLinked }

func (i IndexLinkedTerms) clone() Terms {
	i.BaseIndex = cloneFloat(i.BaseIndex)
	i.CurrentIndex = cloneFloat(i.CurrentIndex)
	i.AdjustmentFactor = cloneFloat(i.AdjustmentFactor)
	i.IndexHistory = cloneHistory(i.IndexHistory)
	return i
}

// GraceTerms holds the attributes of a track with an interest-only grace period.
type GraceTerms struct {
	GracePeriodMonths int
	CurrentPhase      string
	InterestOnly      bool
}

func (GraceTerms) Kind() Kind { return KindGracePeriod }
func (g GraceTerms) clone() Terms { return g }

// BridgeTerms holds the attributes of an interest-only bridge loan that ends
// in a balloon payment. MaturityDate is informational.
type BridgeTerms struct {
	BridgePeriodMonths int
	BalloonPayment     bool
	MaturityDate       string
}

func (BridgeTerms) Kind() Kind { return KindBridge }
func (b BridgeTerms) clone() Terms { return b }

// UnrecognizedTerms carries a track kind outside the known set. Such tracks
// amortize on the standard schedule.
type UnrecognizedTerms struct {
	Label string
}

func (u UnrecognizedTerms) Kind() Kind { return Kind(u.Label) }
func (u UnrecognizedTerms) clone() Terms { return u }

// RateChange is one entry of a prime rate or index history.
type RateChange struct {
	Date             string
	PrimeRate        *float64
	TotalRate        float64
	Index            *float64
	AdjustmentFactor *float64
}

func cloneHistory(history []RateChange) []RateChange {
	if history == nil {
		return nil
	}
	out := make([]RateChange, len(history))
	for i, change := range history {
		change.PrimeRate = cloneFloat(change.PrimeRate)
		change.Index = cloneFloat(change.Index)
		change.AdjustmentFactor = cloneFloat(change.AdjustmentFactor)
		out[i] = change
	}
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
