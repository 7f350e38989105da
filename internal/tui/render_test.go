package tui

import (
	"math"
	"testing"
)

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"Zero percent", 0, "0.0%"},
		{"Whole number", 85, "85.0%"},
		{"One decimal", 85.5, "85.5%"},
		{"Two decimals", 85.55, "85.5%"}, // Go uses banker's rounding
		{"Negative percent", -15.7, "-15.7%"},
		{"Large percent", 150.25, "150.2%"},
		{"Small percent", 0.123, "0.1%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatPercent(tt.value)
			if result != tt.expected {
				t.Errorf("FormatPercent(%.3f) = %q, expected %q", tt.value, result, tt.expected)
			}
		})
	}
}

func TestFormatPercentNaN(t *testing.T) {
	if got := FormatPercent(math.NaN()); got != "0.0%" {
		t.Errorf("FormatPercent(NaN) = %q, expected %q", got, "0.0%")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{"sub-second", 0.0032, "3.2ms"},
		{"exactly one second", 1, "1.00s"},
		{"multi-second", 12.345, "12.35s"},
		{"zero", 0, "0.0ms"},
		{"negative clamps to zero", -1, "0ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.seconds); got != tt.expected {
				t.Errorf("FormatDuration(%v) = %q, expected %q", tt.seconds, got, tt.expected)
			}
		})
	}
}
