// Package repository persists ledger snapshots in PostgreSQL.
// It uses pgx directly (no ORM), storing the reservation list as JSONB.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/ledger"
	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no snapshot exists for a hotel.
var ErrNotFound = errors.New("not found")

const schema = `
CREATE TABLE IF NOT EXISTS ledger_snapshots (
	id           UUID PRIMARY KEY,
	hotel_name   TEXT        NOT NULL,
	next_id      INTEGER     NOT NULL,
	reservations JSONB       NOT NULL,
	taken_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS ledger_snapshots_hotel_taken_idx
	ON ledger_snapshots (hotel_name, taken_at DESC);`

// SnapshotRepository stores full ledger snapshots, one row per mutation.
type SnapshotRepository struct {
	db *pgxpool.Pool
}

// NewSnapshotRepository constructs a SnapshotRepository.
func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// EnsureSchema creates the snapshot table if it does not exist yet.
func (r *SnapshotRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create snapshot schema: %w", err)
	}
	return nil
}

// Save writes s as the newest snapshot of its hotel.
func (r *SnapshotRepository) Save(ctx context.Context, s ledger.Snapshot) error {
	reservations := s.Reservations
	if reservations == nil {
		reservations = []model.Reservation{}
	}
	payload, err := json.Marshal(reservations)
	if err != nil {
		return fmt.Errorf("encode reservations: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO ledger_snapshots (id, hotel_name, next_id, reservations, taken_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), s.HotelName, s.NextID, payload, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// Latest returns the most recent snapshot for hotelName or ErrNotFound.
func (r *SnapshotRepository) Latest(ctx context.Context, hotelName string) (ledger.Snapshot, error) {
	var (
		s       ledger.Snapshot
		payload []byte
	)
	err := r.db.QueryRow(ctx,
		`SELECT hotel_name, next_id, reservations
		 FROM ledger_snapshots
		 WHERE hotel_name = $1
		 ORDER BY taken_at DESC
		 LIMIT 1`,
		hotelName,
	).Scan(&s.HotelName, &s.NextID, &payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.Snapshot{}, ErrNotFound
		}
		return ledger.Snapshot{}, fmt.Errorf("get latest snapshot: %w", err)
	}

	if err := json.Unmarshal(payload, &s.Reservations); err != nil {
		return ledger.Snapshot{}, fmt.Errorf("decode reservations: %w", err)
	}
	return s, nil
}
