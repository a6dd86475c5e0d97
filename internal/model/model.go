// Package model defines the core domain types for the hotel reservation ledger.
package model

// Client is a guest named on a reservation. Name is the identity key used by
// the uniqueness check; Age and Height are informational.
type Client struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Height int    `json:"height"`
}

// Reservation books one or more clients into the hotel for a number of nights.
type Reservation struct {
	ID        int      `json:"id"`
	HotelName string   `json:"hotel_name"`
	Clients   []Client `json:"clients"`
	Duration  int      `json:"duration"`
	Breakfast bool     `json:"breakfast"`
}

// Clone returns a copy that shares no memory with r.
func (r Reservation) Clone() Reservation {
	if r.Clients != nil {
		clients := make([]Client, len(r.Clients))
		copy(clients, r.Clients)
		r.Clients = clients
	}
	return r
}

// HasClient reports whether a client with the given name is on the reservation.
func (r Reservation) HasClient(name string) bool {
	for _, c := range r.Clients {
		if c.Name == name {
			return true
		}
	}
	return false
}

// CreateReservationRequest is the payload for booking a new reservation.
type CreateReservationRequest struct {
	Clients   []Client `json:"clients"`
	Duration  int      `json:"duration"`
	Breakfast bool     `json:"breakfast"`
}

// PriceRequest asks for the price of a reservation that is not in the ledger.
type PriceRequest struct {
	Clients   []Client `json:"clients"`
	Duration  int      `json:"duration"`
	Breakfast bool     `json:"breakfast"`
}

// PriceResponse carries a computed price. ReservationID is zero for quotes.
type PriceResponse struct {
	ReservationID int     `json:"reservation_id,omitempty"`
	Price         float64 `json:"price"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
