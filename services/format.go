// Package services implements the quoting core: pricing calculation, the
// poptávka hash codec, calculation-details reconstruction and offer
// document generation.
package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatCZK formats an amount into Czech koruna notation with thousands
// separated by spaces (e.g. "12 340 Kč"). Whole-crown amounts drop the
// decimal part; anything else keeps 2 decimals.
func FormatCZK(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	var raw string
	if amount == math.Trunc(amount) {
		raw = fmt.Sprintf("%.0f", amount)
	} else {
		raw = fmt.Sprintf("%.2f", amount)
	}

	parts := strings.SplitN(raw, ".", 2)
	result := groupThousands(parts[0])
	if len(parts) == 2 {
		result += "," + parts[1]
	}
	result += " Kč"

	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts a space every 3 digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + " " + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + " " + result
}

// RoundToTens rounds to the nearest ten crowns ("desetikoruna"), the
// granularity every recurring monthly price is quoted in.
func RoundToTens(v float64) float64 {
	return math.Round(v/10) * 10
}
