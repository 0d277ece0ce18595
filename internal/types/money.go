// README: Common money value object used across modules.
package types

import (
	"fmt"
	"math"
)

// Money is an amount in minor currency units (pence for GBP).
type Money struct {
	Amount   int64
	Currency string
}

// FromPounds converts a 2-decimal pound amount to pence, rounding half away
// from zero the same way quote components are rounded.
func FromPounds(v float64) Money {
	return Money{Amount: int64(math.Round(v * 100)), Currency: "GBP"}
}

// Pounds returns the amount back in major units for display and API payloads.
func (m Money) Pounds() float64 {
	return float64(m.Amount) / 100
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.Pounds(), m.Currency)
}
