package request

import (
	"errors"
	"strings"
	"time"

	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/domain/schedule"
)

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidBlock = errors.New("invalid block")
)

// CreateReservationRequest is the direct booking payload. The mobile client
// normally books through the wizard endpoints; this endpoint exists for
// re-submission after a "slot taken" failure and for integration clients.
type CreateReservationRequest struct {
	CommunityID  string `json:"community_id" binding:"required"`
	SpaceID      string `json:"space_id" binding:"required"`
	DepartmentID string `json:"department_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Block        string `json:"block" binding:"required"`
}

func (r CreateReservationRequest) ResolveDate() (time.Time, error) {
	d, err := schedule.ParseDate(strings.TrimSpace(r.Date))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func (r CreateReservationRequest) ResolveBlock() (entities.ReservationBlock, error) {
	b := entities.ReservationBlock(strings.ToLower(strings.TrimSpace(r.Block)))
	if !b.Valid() {
		return "", ErrInvalidBlock
	}
	return b, nil
}

// CancelReservationRequest carries the mandatory justification.
type CancelReservationRequest struct {
	Reason string `json:"reason" binding:"required"`
}
