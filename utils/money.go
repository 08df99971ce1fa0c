package utils

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// NormalizeMoney strips everything but digits from a price field before it is
// submitted to the API. "₱12,500.00" becomes "1250000"-style raw digits only
// when the input carries decimals; callers submit whatever digits remain.
func NormalizeMoney(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatMoney renders a digits-only price with locale grouping for display.
// Non-numeric input falls back to the raw string.
func FormatMoney(s string) string {
	digits := NormalizeMoney(s)
	if digits == "" {
		return s
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return s
	}
	return moneyPrinter.Sprintf("%d", n)
}
