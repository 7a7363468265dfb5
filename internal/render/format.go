// Package render implements the template-to-HTML rendering pipeline for
// market reports. It is a pure, synchronous string-transformation layer:
// builders take a report-result payload plus a template string and produce
// final HTML with no I/O and no shared mutable state.
package render

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MissingValue is rendered wherever a numeric input is absent.
const MissingValue = "—"

// usPrinter applies en-US digit grouping (thousands separators).
var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders v as a dollar amount with thousands separators,
// rounded to the nearest whole dollar. Absent or non-finite values render
// as MissingValue. Negative values keep the minus sign after the dollar
// sign ("$-1,250").
func FormatCurrency(v *float64) string {
	if !present(v) {
		return MissingValue
	}
	return usPrinter.Sprintf("$%d", int64(math.Round(*v)))
}

// FormatNumber renders v rounded to the nearest integer with thousands
// separators. Absent or non-finite values render as MissingValue.
func FormatNumber(v *float64) string {
	if !present(v) {
		return MissingValue
	}
	return usPrinter.Sprintf("%d", int64(math.Round(*v)))
}

// FormatDecimal renders v as a fixed-point string with the given number of
// digits and no grouping. Absent or non-finite values render as MissingValue.
func FormatDecimal(v *float64, decimals int) string {
	if !present(v) {
		return MissingValue
	}
	return fmt.Sprintf("%.*f", decimals, *v)
}

// FormatPercent renders v as a fixed-point string with one decimal digit.
// Callers append the "%" sign where the surrounding markup wants it.
func FormatPercent(v *float64) string {
	if !present(v) {
		return MissingValue
	}
	return fmt.Sprintf("%.1f", *v)
}

// present reports whether v carries a usable numeric value.
func present(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

// fp wraps a concrete float64 for the pointer-taking formatters. Builders use
// it for derived values that are always present.
func fp(v float64) *float64 {
	return &v
}
