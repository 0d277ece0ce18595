// README: Rounding and formatting helpers for monetary amounts and durations.
package pricing

import (
	"fmt"
	"math"
)

// roundMoney rounds to 2 decimal places, half away from zero.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatPrice renders a pound amount for display.
func FormatPrice(v float64) string {
	return fmt.Sprintf("£%.2f", v)
}

// FormatDuration renders total minutes as "{H} hour(s) {M} min(s)", omitting
// the hour segment when zero. Units are singular only at exactly 1.
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	if hours == 0 {
		return fmt.Sprintf("%d %s", minutes, pluralize("min", minutes))
	}
	return fmt.Sprintf("%d %s %d %s",
		hours, pluralize("hour", hours), minutes, pluralize("min", minutes))
}

func pluralize(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
