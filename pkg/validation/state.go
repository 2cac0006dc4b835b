package validation

import (
	"fmt"

	"github.com/iwvelando/mortgage-engine/internal/mortgage"
)

// ValidateState inspects a mortgage state and returns warnings for values
// that are accepted by the engine but are probably mistakes. A nil result
// means nothing looked suspicious.
func ValidateState(state mortgage.State) []string {
	var warnings []string

	if len(state.Tracks) == 0 {
		warnings = append(warnings, fmt.Sprintf("Mortgage '%s' has no tracks", state.ID))
	}

	usesIndex := false
	seen := make(map[string]bool, len(state.Tracks))
	for _, track := range state.Tracks {
		if seen[track.ID] {
			warnings = append(warnings, fmt.Sprintf("Track ID '%s' appears more than once", track.ID))
		}
		seen[track.ID] = true
		warnings = append(warnings, ValidateTrack(track)...)

		if track.Kind() == mortgage.KindIndexLinked {
			usesIndex = true
		}
	}

	if usesIndex && state.Market.BaseIndex <= 0 {
		warnings = append(warnings, fmt.Sprintf("Base CPI index is %v; index-linked tracks cannot be evaluated",
			state.Market.BaseIndex))
	}

	return warnings
}

// ValidateTrack returns warnings for a single track.
func ValidateTrack(track mortgage.Track) []string {
	var warnings []string

	if track.RemainingMonths > track.TotalTermMonths {
		warnings = append(warnings, fmt.Sprintf("Track '%s' has %d remaining months, more than its %d month term",
			track.ID, track.RemainingMonths, track.TotalTermMonths))
	}
	if track.RemainingMonths >= 0 && track.PaymentsMade+track.RemainingMonths != track.TotalTermMonths {
		warnings = append(warnings, fmt.Sprintf("Track '%s' payments made (%d) and remaining months (%d) do not add up to its term (%d)",
			track.ID, track.PaymentsMade, track.RemainingMonths, track.TotalTermMonths))
	}
	if track.CurrentBalance < 0 {
		warnings = append(warnings, fmt.Sprintf("Track '%s' has a negative balance (%.2f)", track.ID, track.CurrentBalance))
	}

	if kind := track.Kind(); !kind.Known() {
		warnings = append(warnings, fmt.Sprintf("Track '%s' has unrecognized type '%s' and will use the standard schedule",
			track.ID, kind))
	}

	switch terms := track.Terms.(type) {
	case mortgage.GraceTerms:
		if terms.GracePeriodMonths >= track.TotalTermMonths {
			warnings = append(warnings, fmt.Sprintf("Track '%s' grace period (%d months) covers its whole term (%d months)",
				track.ID, terms.GracePeriodMonths, track.TotalTermMonths))
		}
	case mortgage.BridgeTerms:
		if terms.BridgePeriodMonths > track.TotalTermMonths {
			warnings = append(warnings, fmt.Sprintf("Track '%s' bridge period (%d months) is longer than its term (%d months)",
				track.ID, terms.BridgePeriodMonths, track.TotalTermMonths))
		}
	}

	return warnings
}
