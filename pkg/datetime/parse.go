// Package datetime provides date and time utility functions.
package datetime

import (
	"fmt"
	"time"

	"github.com/iwvelando/mortgage-engine/pkg/constants"
)

const (
	// DateTimeLayout is the format expected in mortgage documents and is also
	// the output date format.
	DateTimeLayout = constants.DateTimeLayout
)

// ParseDate parses a YYYY-MM-DD date with no timezone component.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
	}
	return t, nil
}

// FormatDate renders t in the document date layout.
func FormatDate(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// AddMonths offsets start by months calendar months. Days past the end of
// the target month roll over the way time.AddDate normalizes them, so Jan 31
// plus one month is Mar 3 (Mar 2 in leap years) while plus two is Mar 31.
func AddMonths(start time.Time, months int) time.Time {
	return start.AddDate(0, months, 0)
}
