package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// EuroString converts an integer cent amount to a plain euro string with
// comma decimal separator, e.g. 1230 -> "12,30". Used for CSV cells.
func EuroString(cents int64) string {
	euros := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
	return strings.ReplaceAll(euros.StringFixed(2), ".", ",")
}

// FormatEuro formats an integer cent amount as an Italian-style currency
// string like "€ 1.234,56" (dot thousands separator, comma decimals).
func FormatEuro(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	euros := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
	fixed := euros.StringFixed(2) // "1234.56"

	intPart := fixed
	fracPart := "00"
	if idx := strings.IndexByte(fixed, '.'); idx >= 0 {
		intPart = fixed[:idx]
		fracPart = fixed[idx+1:]
	}

	var b strings.Builder
	b.Grow(len(fixed) + len(intPart)/3 + 4)
	if neg {
		b.WriteString("-€ ")
	} else {
		b.WriteString("€ ")
	}

	// Insert thousands separators from the left.
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte('.')
		b.WriteString(intPart[i : i+3])
	}

	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
