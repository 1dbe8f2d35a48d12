package interfaces

import (
	"context"
	"errors"
	"time"

	"visitme_reservas/internal/domain/entities"
)

// ErrSlotUnavailable is returned by Create when the conditional slot write
// loses a race: another reservation claimed the same (space, date, block)
// between the caller's conflict guard and the transactional insert.
var ErrSlotUnavailable = errors.New("reservation slot already taken")

// IReservationRepository abstracts DynamoDB persistence for Reservation.
//
// The reservation service must be able to:
//   - create a reservation together with its uniqueness slot item, atomically
//   - answer the availability window query for one space
//   - answer the resident history queries the policy engine needs
//   - cancel a reservation, releasing its slot item in the same transaction
//
// All listing/counting calls exclude cancelled rows; unknown statuses read
// from the store are passed through for callers to skip.

type IReservationRepository interface {
	// Create inserts the reservation row and its slot item in one
	// transaction. Returns ErrSlotUnavailable when the slot item already
	// exists.
	Create(ctx context.Context, r entities.Reservation) (entities.Reservation, error)

	GetByID(ctx context.Context, id string) (entities.Reservation, error)

	// FindActiveBySlot is the conflict-guard query: the newest non-cancelled
	// reservation for the exact (community, space, date, block) tuple, or a
	// zero value when the slot is free.
	FindActiveBySlot(ctx context.Context, communityID, spaceID string, date time.Time, block entities.ReservationBlock) (entities.Reservation, error)

	// ListForSpaceBetween returns non-cancelled reservations for a space
	// with from <= date <= to. Dates are normalized calendar days.
	ListForSpaceBetween(ctx context.Context, communityID, spaceID string, from, to time.Time) ([]entities.Reservation, error)

	// LastByResident returns the resident's most recent non-cancelled
	// reservation by date, across all spaces, or a zero value.
	LastByResident(ctx context.Context, communityID, residentID string) (entities.Reservation, error)

	// CountCreatedSince counts the resident's non-cancelled reservations
	// whose created_at is at or after the given instant.
	CountCreatedSince(ctx context.Context, communityID, residentID string, since time.Time) (int, error)

	ListByResident(ctx context.Context, communityID, residentID string) ([]entities.Reservation, error)

	// Cancel sets status cancelado and the justification, and deletes the
	// slot item, in one transaction. Ownership is enforced here: the update
	// is conditional on resident_id matching, and a mismatch yields a zero
	// value exactly like a missing row, so callers cannot distinguish
	// "not yours" from "not found".
	Cancel(ctx context.Context, id, residentID, reason string) (entities.Reservation, error)
}
