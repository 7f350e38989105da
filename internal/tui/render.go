package tui

import (
	"fmt"
	"math"
)

// FormatPercent formats a percentage value with one decimal place.
// Handles rounding and ensures consistent formatting for percentage displays.
//
// Usage:
//
//	FormatPercent(85.7)  // "85.7%"
//	FormatPercent(100)   // "100.0%"
//
// FormatPercent formats a percentage value with one decimal place and a trailing percent sign.
// If value is NaN, it returns "0.0%". The returned string contains the value rounded to one decimal place followed by "%".
func FormatPercent(value float64) string {
	// Handle special cases: NaN and Infinity
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0.0%"
	}

	// Round to one decimal place
	rounded := fmt.Sprintf("%.1f", value)
	return rounded + "%"
}

// FormatDuration formats a duration in seconds with adaptive precision:
// milliseconds below one second, otherwise seconds to two decimal places.
//
// Usage:
//
//	FormatDuration(0.0032)  // "3.2ms"
//	FormatDuration(1.5)     // "1.50s"
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0ms"
	}
	if seconds < 1 {
		return fmt.Sprintf("%.1fms", seconds*1000)
	}
	return fmt.Sprintf("%.2fs", seconds)
}
