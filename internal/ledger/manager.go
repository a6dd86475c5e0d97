// Package ledger holds the reservation book of a single hotel.
//
// A Manager is not safe for concurrent use. Callers sharing one across
// goroutines must serialize every call, since validation and insertion in
// AddReservation form a single critical section.
package ledger

import (
	"fmt"

	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/model"
)

// Manager owns the reservations of one hotel and hands out their IDs.
type Manager struct {
	hotelName    string
	reservations []model.Reservation
	nextID       int
}

// Snapshot is the complete state of a Manager.
type Snapshot struct {
	HotelName    string              `json:"hotel_name"`
	NextID       int                 `json:"next_id"`
	Reservations []model.Reservation `json:"reservations"`
}

// New returns an empty Manager for hotelName whose first reservation gets ID 1.
func New(hotelName string) *Manager {
	return &Manager{hotelName: hotelName, nextID: 1}
}

// HotelName returns the hotel this ledger belongs to.
func (m *Manager) HotelName() string { return m.hotelName }

// NextID returns the ID the next successful AddReservation will assign.
func (m *Manager) NextID() int { return m.nextID }

// Len returns the number of active reservations.
func (m *Manager) Len() int { return len(m.reservations) }

// AddReservation books clients for duration nights. The candidate is checked
// against every held reservation before anything changes: first for a
// colliding ID, then for each client name in the order given. On failure the
// ledger is untouched and the ID is offered again on the next call.
func (m *Manager) AddReservation(clients []model.Client, duration int, breakfast bool) (model.Reservation, error) {
	candidate := model.Reservation{
		ID:        m.nextID,
		HotelName: m.hotelName,
		Clients:   clients,
		Duration:  duration,
		Breakfast: breakfast,
	}.Clone()

	if err := m.validate(candidate); err != nil {
		return model.Reservation{}, err
	}

	m.reservations = append(m.reservations, candidate)
	m.nextID++
	return candidate.Clone(), nil
}

func (m *Manager) validate(candidate model.Reservation) error {
	for _, r := range m.reservations {
		if r.ID == candidate.ID {
			return &Error{Kind: KindDuplicateID, ReservationID: candidate.ID}
		}
	}
	for _, c := range candidate.Clients {
		for _, r := range m.reservations {
			if r.HasClient(c.Name) {
				return &Error{Kind: KindDuplicateClient, ClientName: c.Name}
			}
		}
	}
	return nil
}

// CancelReservation removes the reservation with the given ID. The counter is
// left alone, so the ID is never handed out again.
func (m *Manager) CancelReservation(id int) error {
	for i, r := range m.reservations {
		if r.ID == id {
			m.reservations = append(m.reservations[:i], m.reservations[i+1:]...)
			return nil
		}
	}
	return &Error{Kind: KindReservationNotFound, ReservationID: id}
}

// Reservation returns a copy of the active reservation with the given ID.
func (m *Manager) Reservation(id int) (model.Reservation, error) {
	for _, r := range m.reservations {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	return model.Reservation{}, &Error{Kind: KindReservationNotFound, ReservationID: id}
}

// AllReservations returns a copy of the active reservations in booking order.
func (m *Manager) AllReservations() []model.Reservation {
	out := make([]model.Reservation, len(m.reservations))
	for i, r := range m.reservations {
		out[i] = r.Clone()
	}
	return out
}

// CalculateReservationPrice prices r, which need not be held by m.
func (m *Manager) CalculateReservationPrice(r model.Reservation) float64 {
	return Price(r)
}

// Snapshot captures the current state.
func (m *Manager) Snapshot() Snapshot {
	return Snapshot{
		HotelName:    m.hotelName,
		NextID:       m.nextID,
		Reservations: m.AllReservations(),
	}
}

// Restore replaces the state with s. The reservations are trusted as given:
// neither uniqueness rule is re-checked and NextID is taken verbatim.
func (m *Manager) Restore(s Snapshot) error {
	if s.HotelName != m.hotelName {
		return fmt.Errorf("restore: snapshot belongs to %q, ledger is %q", s.HotelName, m.hotelName)
	}
	if s.NextID < 1 {
		return fmt.Errorf("restore: next id must be positive, got %d", s.NextID)
	}
	reservations := make([]model.Reservation, len(s.Reservations))
	for i, r := range s.Reservations {
		reservations[i] = r.Clone()
	}
	m.reservations = reservations
	m.nextID = s.NextID
	return nil
}
