// Package format renders amounts for human-readable output.
package format

import (
	"fmt"
	"math"
	"strings"
)

var symbols = map[string]string{
	"ILS": "₪",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Currency returns an amount with the symbol of the currency code and
// thousands separators (e.g., "-₪1,234.56"). Codes without a known symbol are
// appended instead (e.g., "1,234.56 CHF").
func Currency(amount float64, code string) string {
	formatted := NumericCurrency(amount)
	symbol, ok := symbols[strings.ToUpper(code)]
	if !ok {
		if code == "" {
			return formatted
		}
		return formatted + " " + strings.ToUpper(code)
	}
	if amount < 0 && formatted != "0.00" {
		return "-" + symbol + strings.TrimPrefix(formatted, "-")
	}
	return symbol + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 && formatted != "0.00" {
		return "-" + formatted
	}
	return formatted
}

// Percent renders an annual rate fraction as a percentage (0.0475 -> "4.75%").
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
