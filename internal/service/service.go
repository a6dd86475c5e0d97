// Package service serializes access to the hotel ledger and orchestrates
// persistence between HTTP handlers and the repository layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/ledger"
	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/model"
	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/repository"
	"go.uber.org/zap"
)

// SnapshotStore persists ledger state. *repository.SnapshotRepository
// satisfies it.
type SnapshotStore interface {
	Save(ctx context.Context, s ledger.Snapshot) error
	Latest(ctx context.Context, hotelName string) (ledger.Snapshot, error)
}

// ReservationService guards one ledger with a mutex. Every mutation, including
// its snapshot write, runs as a single critical section.
type ReservationService struct {
	mu     sync.Mutex
	ledger *ledger.Manager
	store  SnapshotStore
	log    *zap.Logger
}

// NewReservationService constructs a ReservationService. store may be nil,
// in which case state lives only in memory.
func NewReservationService(l *ledger.Manager, store SnapshotStore, log *zap.Logger) *ReservationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReservationService{ledger: l, store: store, log: log}
}

// Load restores the newest stored snapshot. A missing snapshot leaves the
// ledger empty.
func (s *ReservationService) Load(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Latest(ctx, s.ledger.HotelName())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Info("no stored snapshot, starting empty", zap.String("hotel", s.ledger.HotelName()))
			return nil
		}
		return fmt.Errorf("load snapshot: %w", err)
	}
	if err := s.ledger.Restore(snap); err != nil {
		return err
	}
	s.log.Info("ledger restored",
		zap.String("hotel", snap.HotelName),
		zap.Int("reservations", len(snap.Reservations)),
		zap.Int("next_id", snap.NextID),
	)
	return nil
}

// AddReservation books the clients in req. Ledger errors are returned as is
// so callers can match them with errors.Is.
func (s *ReservationService) AddReservation(ctx context.Context, req model.CreateReservationRequest) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.ledger.Snapshot()
	r, err := s.ledger.AddReservation(req.Clients, req.Duration, req.Breakfast)
	if err != nil {
		s.log.Info("reservation rejected", zap.Error(err), zap.Int("clients", len(req.Clients)))
		return nil, err
	}
	if err := s.persist(ctx, before); err != nil {
		return nil, err
	}

	s.log.Info("reservation added",
		zap.Int("id", r.ID),
		zap.Int("clients", len(r.Clients)),
		zap.Int("duration", r.Duration),
		zap.Bool("breakfast", r.Breakfast),
	)
	return &r, nil
}

// CancelReservation removes the reservation with the given ID.
func (s *ReservationService) CancelReservation(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.ledger.Snapshot()
	if err := s.ledger.CancelReservation(id); err != nil {
		s.log.Info("cancellation rejected", zap.Error(err))
		return err
	}
	if err := s.persist(ctx, before); err != nil {
		return err
	}

	s.log.Info("reservation cancelled", zap.Int("id", id))
	return nil
}

// ListReservations returns all active reservations in booking order.
func (s *ReservationService) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.AllReservations(), nil
}

// GetReservation returns a single active reservation.
func (s *ReservationService) GetReservation(ctx context.Context, id int) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.ledger.Reservation(id)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Price returns the price of an active reservation.
func (s *ReservationService) Price(ctx context.Context, id int) (*model.PriceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.ledger.Reservation(id)
	if err != nil {
		return nil, err
	}
	return &model.PriceResponse{ReservationID: r.ID, Price: s.ledger.CalculateReservationPrice(r)}, nil
}

// Quote prices a reservation without booking it.
func (s *ReservationService) Quote(ctx context.Context, req model.PriceRequest) (*model.PriceResponse, error) {
	r := model.Reservation{
		HotelName: s.ledger.HotelName(),
		Clients:   req.Clients,
		Duration:  req.Duration,
		Breakfast: req.Breakfast,
	}
	return &model.PriceResponse{Price: ledger.Price(r)}, nil
}

// persist saves the current state. If the write fails the ledger is put back
// to before, so the caller sees no change at all.
func (s *ReservationService) persist(ctx context.Context, before ledger.Snapshot) error {
	if s.store == nil {
		return nil
	}
	err := s.store.Save(ctx, s.ledger.Snapshot())
	if err == nil {
		return nil
	}
	if rerr := s.ledger.Restore(before); rerr != nil {
		s.log.Error("rollback failed", zap.Error(rerr))
	}
	s.log.Error("snapshot save failed, mutation rolled back", zap.Error(err))
	return fmt.Errorf("save snapshot: %w", err)
}
