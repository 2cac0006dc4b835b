// Package adapters converts between the snake_case wire documents exchanged
// over HTTP and on disk and the engine's mortgage value types.
package adapters

// PaymentBreakdown is the wire form of mortgage.PaymentBreakdown.
type PaymentBreakdown struct {
	TrackID   string  `json:"track_id" yaml:"track_id"`
	TrackName string  `json:"track_name" yaml:"track_name"`
	Payment   float64 `json:"payment" yaml:"payment"`
	Principal float64 `json:"principal" yaml:"principal"`
	Interest  float64 `json:"interest" yaml:"interest"`
}

// MonthlyPayment is the wire form of mortgage.MonthlyPayment.
type MonthlyPayment struct {
	TotalPayment float64            `json:"total_payment" yaml:"total_payment"`
	Breakdown    []PaymentBreakdown `json:"breakdown" yaml:"breakdown"`
}

// RateChangeHistory is one entry of a prime rate or CPI history.
type RateChangeHistory struct {
	Date             string   `json:"date" yaml:"date"`
	PrimeRate        *float64 `json:"prime_rate" yaml:"prime_rate,omitempty"`
	TotalRate        float64  `json:"total_rate" yaml:"total_rate"`
	CPIIndex         *float64 `json:"cpi_index" yaml:"cpi_index,omitempty"`
	AdjustmentFactor *float64 `json:"adjustment_factor" yaml:"adjustment_factor,omitempty"`
}

// AdjustmentTrigger describes an upcoming event that will move the payment.
type AdjustmentTrigger struct {
	TriggerType    string   `json:"trigger_type" yaml:"trigger_type"`
	AffectsTracks  []string `json:"affects_tracks" yaml:"affects_tracks"`
	NextUpdateDate *string  `json:"next_update_date" yaml:"next_update_date,omitempty"`
	NextResetDate  *string  `json:"next_reset_date" yaml:"next_reset_date,omitempty"`
	MaturityDate   *string  `json:"maturity_date" yaml:"maturity_date,omitempty"`
	EndDate        *string  `json:"end_date" yaml:"end_date,omitempty"`
}

// MortgageTrack is the flat wire form of a track. Which optional fields are
// meaningful depends on TrackType.
type MortgageTrack struct {
	TrackID         string  `json:"track_id" yaml:"track_id"`
	TrackName       string  `json:"track_name" yaml:"track_name"`
	TrackType       string  `json:"track_type" yaml:"track_type"`
	OriginalAmount  float64 `json:"original_amount" yaml:"original_amount"`
	CurrentBalance  float64 `json:"current_balance" yaml:"current_balance"`
	Rate            float64 `json:"rate" yaml:"rate"`
	RateType        string  `json:"rate_type" yaml:"rate_type"`
	StartDate       string  `json:"start_date" yaml:"start_date"`
	TotalTermMonths int     `json:"total_term_months" yaml:"total_term_months"`
	RemainingMonths int     `json:"remaining_months" yaml:"remaining_months"`
	PaymentsMade    int     `json:"payments_made" yaml:"payments_made"`

	// grace_period
	GracePeriodMonths *int    `json:"grace_period_months" yaml:"grace_period_months,omitempty"`
	CurrentPhase      *string `json:"current_phase" yaml:"current_phase,omitempty"`
	IsInterestOnly    *bool   `json:"is_interest_only" yaml:"is_interest_only,omitempty"`

	// bridge
	BridgePeriodMonths *int    `json:"bridge_period_months" yaml:"bridge_period_months,omitempty"`
	HasBalloonPayment  *bool   `json:"has_balloon_payment" yaml:"has_balloon_payment,omitempty"`
	MaturityDate       *string `json:"maturity_date" yaml:"maturity_date,omitempty"`

	// variable_prime
	BaseRate          *float64            `json:"base_rate" yaml:"base_rate,omitempty"`
	Margin            *float64            `json:"margin" yaml:"margin,omitempty"`
	CurrentRate       *float64            `json:"current_rate" yaml:"current_rate,omitempty"`
	RateChangeHistory []RateChangeHistory `json:"rate_change_history" yaml:"rate_change_history,omitempty"`

	// index_linked_variable
	IndexType               *string             `json:"index_type" yaml:"index_type,omitempty"`
	BaseCPI                 *float64            `json:"base_cpi" yaml:"base_cpi,omitempty"`
	CurrentCPI              *float64            `json:"current_cpi" yaml:"current_cpi,omitempty"`
	CPIAdjustmentFactor     *float64            `json:"cpi_adjustment_factor" yaml:"cpi_adjustment_factor,omitempty"`
	RateResetFrequencyYears *int                `json:"rate_reset_frequency_years" yaml:"rate_reset_frequency_years,omitempty"`
	NextRateResetDate       *string             `json:"next_rate_reset_date" yaml:"next_rate_reset_date,omitempty"`
	CPIUpdateHistory        []RateChangeHistory `json:"cpi_update_history" yaml:"cpi_update_history,omitempty"`
}

// MarketConditions is the wire form of mortgage.MarketConditions.
type MarketConditions struct {
	CurrentPrimeRate float64 `json:"current_prime_rate" yaml:"current_prime_rate"`
	CurrentCPIIndex  float64 `json:"current_cpi_index" yaml:"current_cpi_index"`
	BaseCPIIndex     float64 `json:"base_cpi_index" yaml:"base_cpi_index"`
}

// Borrower identifies the mortgage holder.
type Borrower struct {
	Name string `json:"name" yaml:"name"`
	ID   string `json:"id" yaml:"id"`
}

// MortgageDetails holds origination metadata.
type MortgageDetails struct {
	OriginalAmount float64 `json:"original_amount" yaml:"original_amount"`
	Currency       string  `json:"currency" yaml:"currency"`
	StartDate      string  `json:"start_date" yaml:"start_date"`
	CurrentDate    string  `json:"current_date" yaml:"current_date"`
}

// AmortizationEntry is one row of an amortization table.
type AmortizationEntry struct {
	PaymentNumber int     `json:"payment_number" yaml:"payment_number"`
	Date          string  `json:"date" yaml:"date"`
	Payment       float64 `json:"payment" yaml:"payment"`
	Principal     float64 `json:"principal" yaml:"principal"`
	Interest      float64 `json:"interest" yaml:"interest"`
	Balance       float64 `json:"balance" yaml:"balance"`
}

// MortgageState is the wire form of mortgage.State.
type MortgageState struct {
	MortgageID             string              `json:"mortgage_id" yaml:"mortgage_id"`
	Borrower               Borrower            `json:"borrower" yaml:"borrower"`
	MortgageDetails        MortgageDetails     `json:"mortgage_details" yaml:"mortgage_details"`
	MarketConditions       MarketConditions    `json:"market_conditions" yaml:"market_conditions"`
	Tracks                 []MortgageTrack     `json:"tracks" yaml:"tracks"`
	CurrentMonthlyPayment  MonthlyPayment      `json:"current_monthly_payment" yaml:"current_monthly_payment"`
	LastCalculationDate    string              `json:"last_calculation_date" yaml:"last_calculation_date"`
	NextAdjustmentTriggers []AdjustmentTrigger `json:"next_adjustment_triggers" yaml:"next_adjustment_triggers"`
	AmortizationTable      []AmortizationEntry `json:"amortization_table" yaml:"amortization_table,omitempty"`
}

// MonthlyChanges is the wire form of mortgage.MarketUpdate.
type MonthlyChanges struct {
	NewPrimeRate    *float64 `json:"new_prime_rate" yaml:"new_prime_rate,omitempty"`
	NewCPIIndex     *float64 `json:"new_cpi_index" yaml:"new_cpi_index,omitempty"`
	CalculationDate string   `json:"calculation_date" yaml:"calculation_date"`
}

// UpdateMortgageRequest is the body of an update operation.
type UpdateMortgageRequest struct {
	MortgageState  *MortgageState  `json:"mortgage_state" yaml:"mortgage_state"`
	MonthlyChanges *MonthlyChanges `json:"monthly_changes" yaml:"monthly_changes"`
}

// Change is the old and new value of one market field.
type Change struct {
	Old float64 `json:"old" yaml:"old"`
	New float64 `json:"new" yaml:"new"`
}

// UpdateMortgageResponse is the result of an update operation.
type UpdateMortgageResponse struct {
	UpdatedMortgageState MortgageState     `json:"updated_mortgage_state" yaml:"updated_mortgage_state"`
	ChangesApplied       map[string]Change `json:"changes_applied" yaml:"changes_applied"`
	Warnings             []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// PaymentCalculationRequest is the body of a single-payment calculation. Rate
// is the nominal annual rate.
type PaymentCalculationRequest struct {
	Rate      float64 `json:"rate" yaml:"rate"`
	Periods   int     `json:"periods" yaml:"periods"`
	Principal float64 `json:"principal" yaml:"principal"`
}

// PaymentCalculationResponse is the result of a single-payment calculation.
type PaymentCalculationResponse struct {
	MonthlyPayment float64 `json:"monthly_payment" yaml:"monthly_payment"`
}
