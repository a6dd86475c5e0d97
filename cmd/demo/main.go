// Command demo walks through a few bookings against an in-memory ledger and
// logs each outcome.
package main

import (
	"errors"

	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/ledger"
	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/model"
	"go.uber.org/zap"
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	m := ledger.New("Hotel Dragon Ball")

	goku := model.Client{Name: "Goku", Age: 30, Height: 175}
	vegeta := model.Client{Name: "Vegeta", Age: 35, Height: 180}
	krillin := model.Client{Name: "Krillin", Age: 30, Height: 153}

	first, err := m.AddReservation([]model.Client{goku, vegeta}, 3, true)
	if err != nil {
		log.Fatal("first booking", zap.Error(err))
	}
	log.Info("booked",
		zap.Int("id", first.ID),
		zap.String("hotel", first.HotelName),
		zap.Float64("price", m.CalculateReservationPrice(first)),
	)

	_, err = m.AddReservation([]model.Client{goku, krillin}, 2, false)
	switch {
	case errors.Is(err, ledger.ErrDuplicateClient):
		log.Info("second booking rejected", zap.Error(err))
	case err != nil:
		log.Fatal("second booking", zap.Error(err))
	default:
		log.Fatal("second booking should have been rejected")
	}

	second, err := m.AddReservation([]model.Client{krillin}, 2, false)
	if err != nil {
		log.Fatal("third booking", zap.Error(err))
	}
	log.Info("booked",
		zap.Int("id", second.ID),
		zap.Float64("price", m.CalculateReservationPrice(second)),
	)

	for _, r := range m.AllReservations() {
		log.Info("active", zap.Int("id", r.ID), zap.Int("clients", len(r.Clients)), zap.Int("nights", r.Duration))
	}

	if err := m.CancelReservation(first.ID); err != nil {
		log.Fatal("cancel", zap.Error(err))
	}
	log.Info("cancelled", zap.Int("id", first.ID))

	if err := m.CancelReservation(first.ID); errors.Is(err, ledger.ErrReservationNotFound) {
		log.Info("cancel again rejected", zap.Error(err))
	}
}
