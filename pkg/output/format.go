// Package output provides utilities for formatting and displaying mortgage
// update results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/iwvelando/mortgage-engine/internal/mortgage"
	"github.com/iwvelando/mortgage-engine/pkg/adapters"
	"github.com/iwvelando/mortgage-engine/pkg/constants"
	"github.com/iwvelando/mortgage-engine/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report is the outcome of a market update as presented to a user.
type Report struct {
	State    mortgage.State
	Changes  mortgage.ChangeLog
	Warnings []string
}

// Write renders report in the named output format.
func Write(w io.Writer, outputFormat string, report Report) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, report)
	case constants.OutputFormatCSV:
		return CsvFormat(w, report.State.AmortizationTable)
	case constants.OutputFormatJSON:
		return JSONFormat(w, adapters.UpdateMortgageResponse{
			UpdatedMortgageState: adapters.FromState(report.State),
			ChangesApplied:       adapters.FromChangeLog(report.Changes),
			Warnings:             report.Warnings,
		})
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, report Report) error {
	p := message.NewPrinter(language.English)
	state := report.State
	currency := state.Details.Currency

	_, _ = fmt.Fprintf(w, "--- Mortgage %s as of %s ---\n", state.ID, state.LastCalculationDate)
	for _, warning := range report.Warnings {
		_, _ = fmt.Fprintf(w, "Warning: %s\n", warning)
	}

	keys := make([]string, 0, len(report.Changes))
	for key := range report.Changes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		change := report.Changes[key]
		_, _ = fmt.Fprintf(w, "Change %s: %s -> %s\n", key, changeValue(key, change.Old), changeValue(key, change.New))
	}

	_, _ = fmt.Fprintf(w, "\nTrack                | Payment        | Principal      | Interest\n")
	_, _ = fmt.Fprintf(w, "_____                | _______        | _________      | ________\n")
	for _, b := range state.CurrentPayment.Breakdown {
		_, _ = fmt.Fprintf(w, "%-20s | %-14s | %-14s | %s\n", b.TrackName,
			format.Currency(b.Payment, currency), format.Currency(b.Principal, currency), format.Currency(b.Interest, currency))
	}
	_, _ = fmt.Fprintf(w, "Total monthly payment: %s\n", format.Currency(state.CurrentPayment.Total, currency))

	if len(state.AmortizationTable) == 0 {
		return nil
	}
	_, _ = fmt.Fprintf(w, "\n#    | Date       | Payment      | Principal    | Interest     | Balance\n")
	_, _ = fmt.Fprintf(w, "_    | ____       | _______      | _________    | ________     | _______\n")
	for _, e := range state.AmortizationTable {
		if _, err := p.Fprintf(w, "%-4d | %s | %12.2f | %12.2f | %12.2f | %.2f\n",
			e.PaymentNumber, e.Date, e.Payment, e.Principal, e.Interest, e.Balance); err != nil {
			return err
		}
	}
	return nil
}

// changeValue renders rates as percentages and index values as plain numbers.
func changeValue(key string, value float64) string {
	if key == mortgage.ChangePrimeRate {
		return format.Percent(value)
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// CsvFormat outputs the amortization table in comma-separated value format.
func CsvFormat(w io.Writer, entries []mortgage.AmortizationEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"payment_number", "date", "payment", "principal", "interest", "balance"}); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			strconv.Itoa(e.PaymentNumber),
			e.Date,
			strconv.FormatFloat(e.Payment, 'f', 2, 64),
			strconv.FormatFloat(e.Principal, 'f', 2, 64),
			strconv.FormatFloat(e.Interest, 'f', 2, 64),
			strconv.FormatFloat(e.Balance, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSONFormat outputs payload as indented JSON.
func JSONFormat(w io.Writer, payload interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// PaymentFormat renders a single annuity payment.
func PaymentFormat(w io.Writer, outputFormat string, payment float64) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		_, err := fmt.Fprintf(w, "Monthly payment: %s\n", format.NumericCurrency(payment))
		return err
	case constants.OutputFormatCSV:
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"monthly_payment"})
		_ = cw.Write([]string{strconv.FormatFloat(payment, 'f', 2, 64)})
		cw.Flush()
		return cw.Error()
	case constants.OutputFormatJSON:
		return JSONFormat(w, adapters.PaymentCalculationResponse{MonthlyPayment: payment})
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}
