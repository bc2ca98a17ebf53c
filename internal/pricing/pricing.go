package pricing

import (
	"math"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
)

// Breakdown is the priced cost of a session in whole currency units.
// Total is always Subtotal + Fee.
type Breakdown struct {
	Subtotal int64
	Fee      int64
	Total    int64
}

// Quote prices a session from the tutor's hourly rate and the booked hours.
//
// Rounding is half-up on each intermediate value: the fee is derived from
// the rounded subtotal, not the raw product. Amounts are whole currency
// units internally; minor units appear only at the payment-gateway boundary.
func Quote(hourlyRate int64, hours float64) Breakdown {
	subtotal := roundHalfUp(float64(hourlyRate) * hours)
	fee := roundHalfUp(float64(subtotal) * domain.PlatformFeeRate)

	return Breakdown{
		Subtotal: subtotal,
		Fee:      fee,
		Total:    subtotal + fee,
	}
}

// MinorUnits converts a whole-unit amount to the gateway's minor units.
func MinorUnits(amount int64) int64 {
	return amount * 100
}

func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
