package response

import (
	"time"

	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/domain/schedule"
)

type ReservationResponse struct {
	ID                 string    `json:"id"`
	CommunityID        string    `json:"community_id"`
	SpaceID            string    `json:"space_id"`
	DepartmentID       string    `json:"department_id"`
	Date               string    `json:"date"`
	Block              string    `json:"block"`
	BlockLabel         string    `json:"block_label"`
	DurationHours      int       `json:"duration_hours"`
	Status             string    `json:"status"`
	CostApplied        float64   `json:"cost_applied"`
	IsGraceUse         bool      `json:"is_grace_use"`
	CancellationReason string    `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func FromReservation(r entities.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:                 r.ID,
		CommunityID:        r.CommunityID,
		SpaceID:            r.SpaceID,
		DepartmentID:       r.DepartmentID,
		Date:               schedule.FormatDate(r.Date),
		Block:              string(r.Block),
		BlockLabel:         schedule.BlockLabel(r.Block),
		DurationHours:      r.DurationHours,
		Status:             string(r.Status),
		CostApplied:        r.CostApplied,
		IsGraceUse:         r.IsGraceUse,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
	}
}

// CooldownResponse is returned instead of a reservation when the resident's
// cooldown window is still open. It is a regular outcome, not an error.
type CooldownResponse struct {
	CooldownActive bool `json:"cooldown_active"`
	RemainingDays  int  `json:"remaining_days"`
}

func FromReservations(rs []entities.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReservation(r))
	}
	return out
}
