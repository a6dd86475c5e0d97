package ledger

import "fmt"

// ErrorKind enumerates the ways the ledger rejects a mutation.
type ErrorKind int

const (
	KindDuplicateID ErrorKind = iota + 1
	KindDuplicateClient
	KindReservationNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindDuplicateID:
		return "duplicate reservation id"
	case KindDuplicateClient:
		return "duplicate client"
	case KindReservationNotFound:
		return "reservation not found"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by every rejected ledger operation. ReservationID is set
// for DuplicateID and ReservationNotFound, ClientName for DuplicateClient.
type Error struct {
	Kind          ErrorKind
	ReservationID int
	ClientName    string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindDuplicateClient:
		if e.ClientName != "" {
			return fmt.Sprintf("%s: %q already has a reservation", e.Kind, e.ClientName)
		}
	case KindDuplicateID, KindReservationNotFound:
		if e.ReservationID != 0 {
			return fmt.Sprintf("%s: %d", e.Kind, e.ReservationID)
		}
	}
	return e.Kind.String()
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrDuplicateClient)
// works regardless of the offending name.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	// ErrDuplicateID is returned when a candidate's ID is already held.
	ErrDuplicateID = &Error{Kind: KindDuplicateID}

	// ErrDuplicateClient is returned when a candidate client name is already
	// booked on another reservation.
	ErrDuplicateClient = &Error{Kind: KindDuplicateClient}

	// ErrReservationNotFound is returned when no reservation has the given ID.
	ErrReservationNotFound = &Error{Kind: KindReservationNotFound}
)
