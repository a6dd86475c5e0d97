package ledger

import "github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/model"

const (
	// NightlyRatePerClient is the base price of one client for one night.
	NightlyRatePerClient = 20.0

	// BreakfastFactor multiplies the base price when breakfast is included.
	BreakfastFactor = 1.25
)

// Price computes clients × rate × nights, times BreakfastFactor with
// breakfast. Names play no part, and an empty client list prices at zero.
func Price(r model.Reservation) float64 {
	price := float64(len(r.Clients)) * NightlyRatePerClient * float64(r.Duration)
	if r.Breakfast {
		price *= BreakfastFactor
	}
	return price
}
