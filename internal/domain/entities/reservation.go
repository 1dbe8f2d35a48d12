package entities

import "time"

// ReservationStatus represents the lifecycle of a common-space reservation.
//
// Domain notes:
//   - Only the booking flow creates reservations (always as "agendado").
//   - Only the cancellation flow moves a reservation to "cancelado".
//   - "activo" and "expirado" are set by a background process outside this
//     service; we treat them as read-only inputs.
//   - Rows with a status we do not recognize are tolerated when reading and
//     ignored for availability purposes instead of rejected.

type ReservationStatus string

const (
	ReservationStatusAgendado  ReservationStatus = "agendado"
	ReservationStatusActivo    ReservationStatus = "activo"
	ReservationStatusExpirado  ReservationStatus = "expirado"
	ReservationStatusCancelado ReservationStatus = "cancelado"
)

// Known reports whether the status is one this service understands.
func (s ReservationStatus) Known() bool {
	switch s {
	case ReservationStatusAgendado, ReservationStatusActivo, ReservationStatusExpirado, ReservationStatusCancelado:
		return true
	}
	return false
}

// ReservationBlock is the half-day slot a common space is booked for.
// Conflict detection is by (date, block) equality only; the block's clock
// times exist purely for display and calendar export.

type ReservationBlock string

const (
	BlockMorning   ReservationBlock = "morning"
	BlockAfternoon ReservationBlock = "afternoon"
)

func (b ReservationBlock) Valid() bool {
	return b == BlockMorning || b == BlockAfternoon
}

// Reservation is the booking of a common space for one block of one day.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (space_date-index): slot_space = community#space, SK date
//   - GSI2 (resident_date-index): resident_id, SK date
//
// A companion slot item (communityID#spaceID#date#block) is written in the
// same transaction as the reservation row; its conditional put is what keeps
// the slot unique among non-cancelled reservations.
//
// Date is a pure calendar day in the community timezone, normalized to UTC
// midnight in memory and stored as "2006-01-02". Time-of-day never takes
// part in conflict detection.

type Reservation struct {
	ID            string            `json:"id"`
	CommunityID   string            `json:"community_id"`
	SpaceID       string            `json:"space_id"`
	DepartmentID  string            `json:"department_id"`
	ResidentID    string            `json:"resident_id"`
	Date          time.Time         `json:"date"`
	Block         ReservationBlock  `json:"block"`
	DurationHours int               `json:"duration_hours"`
	Status        ReservationStatus `json:"status"`

	// CostApplied is 0 whenever the space is free or the booking consumed a
	// monthly grace day; otherwise it equals the space's event price at
	// creation time.
	CostApplied float64 `json:"cost_applied"`
	IsGraceUse  bool    `json:"is_grace_use"`

	// CancellationReason is non-empty exactly when Status is cancelado.
	CancellationReason string `json:"cancellation_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Active reports whether the reservation occupies its slot, i.e. it counts
// for availability and conflict checks.
func (r Reservation) Active() bool {
	return r.Status.Known() && r.Status != ReservationStatusCancelado
}
