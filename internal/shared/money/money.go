// Package money provides display formatting for user-facing amounts.
package money

import (
	"fmt"
	"math"
	"strings"
)

// Round2 rounds a value to 2 decimal places. Used at output boundaries only;
// internal computation keeps full float64 precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds a value to 1 decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Format renders an amount with thousands separators and the given number of
// decimal places, e.g. Format(12345.678, 2) == "12,345.68".
func Format(v float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, v)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx != -1 {
		intPart = s[:idx]
		fracPart = s[idx:]
	}

	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// Dollars is shorthand for "$" + Format(v, 2).
func Dollars(v float64) string {
	return "$" + Format(v, 2)
}

// DollarsWhole is shorthand for "$" + Format(v, 0).
func DollarsWhole(v float64) string {
	return "$" + Format(v, 0)
}
