package mortgage

// MarketConditions holds the market inputs shared by every track.
type MarketConditions struct {
	CurrentPrimeRate float64
	CurrentIndex     float64
	// BaseIndex is the index value at origination and is never updated.
	BaseIndex float64
}

// IndexRatio returns the cumulative index movement since origination.
func (m MarketConditions) IndexRatio() float64 {
	return m.CurrentIndex / m.BaseIndex
}

// Borrower identifies the mortgage holder.
type Borrower struct {
	Name string
	ID   string
}

// Details holds the origination details of a mortgage. Currency is metadata
// and never enters the arithmetic.
type Details struct {
	OriginalAmount float64
	Currency       string
	StartDate      string
	CurrentDate    string
}

// PaymentBreakdown holds one track's figures for the current period.
type PaymentBreakdown struct {
	TrackID   string
	TrackName string
	Payment   float64
	Principal float64
	Interest  float64
}

// MonthlyPayment is the combined current payment of a mortgage.
type MonthlyPayment struct {
	Total     float64
	Breakdown []PaymentBreakdown
}

func (m MonthlyPayment) clone() MonthlyPayment {
	if m.Breakdown != nil {
		m.Breakdown = append(make([]PaymentBreakdown, 0, len(m.Breakdown)), m.Breakdown...)
	}
	return m
}

// AmortizationEntry is one row of an amortization table.
type AmortizationEntry struct {
	PaymentNumber int
	Date          string
	Payment       float64
	Principal     float64
	Interest      float64
	Balance       float64
}

// AdjustmentTrigger describes an upcoming event that changes the payment of
// some tracks. Triggers are informational.
type AdjustmentTrigger struct {
	TriggerType    string
	AffectsTracks  []string
	NextUpdateDate string
	NextResetDate  string
	MaturityDate   string
	EndDate        string
}

// State is the aggregate root of a mortgage. It is a value: transitions
// return a new State and never modify the one they were given.
type State struct {
	ID                  string
	Borrower            Borrower
	Details             Details
	Market              MarketConditions
	Tracks              []Track
	CurrentPayment      MonthlyPayment
	LastCalculationDate string
	AdjustmentTriggers  []AdjustmentTrigger
	// AmortizationTable is nil until a combined schedule has been computed.
	AmortizationTable []AmortizationEntry
}

// Clone returns a deep copy of the state sharing no slices or pointers with s.
func (s State) Clone() State {
	if s.Tracks != nil {
		tracks := make([]Track, len(s.Tracks))
		for i, track := range s.Tracks {
			tracks[i] = track.Clone()
		}
		s.Tracks = tracks
	}
	s.CurrentPayment = s.CurrentPayment.clone()
	if s.AdjustmentTriggers != nil {
		triggers := make([]AdjustmentTrigger, len(s.AdjustmentTriggers))
		for i, trigger := range s.AdjustmentTriggers {
			if trigger.AffectsTracks != nil {
				trigger.AffectsTracks = append(make([]string, 0, len(trigger.AffectsTracks)), trigger.AffectsTracks...)
			}
			triggers[i] = trigger
		}
		s.AdjustmentTriggers = triggers
	}
	if s.AmortizationTable != nil {
		s.AmortizationTable = append(make([]AmortizationEntry, 0, len(s.AmortizationTable)), s.AmortizationTable...)
	}
	return s
}

// MarketUpdate carries the market movements to apply to a mortgage. Nil
// fields mean no change.
type MarketUpdate struct {
	NewPrimeRate    *float64
	NewIndex        *float64
	CalculationDate string
}

// Change keys recorded in a ChangeLog.
const (
	ChangePrimeRate = "prime_rate_change"
	ChangeIndex     = "cpi_change"
)

// Change records the previous and new value of a market field.
type Change struct {
	Old float64
	New float64
}

// ChangeLog maps a change key to the values it moved between. Only supplied
// fields appear.
type ChangeLog map[string]Change
