package request

import (
	"strings"
	"time"

	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/domain/schedule"
)

type StartWizardRequest struct {
	CommunityID string `json:"community_id" binding:"required"`
}

type SelectSpaceRequest struct {
	SpaceID string `json:"space_id" binding:"required"`
}

type SelectDepartmentRequest struct {
	DepartmentID string `json:"department_id" binding:"required"`
}

type SelectDayRequest struct {
	Date string `json:"date" binding:"required"`
}

func (r SelectDayRequest) ResolveDate() (time.Time, error) {
	d, err := schedule.ParseDate(strings.TrimSpace(r.Date))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

type SelectBlockRequest struct {
	Block string `json:"block" binding:"required"`
}

func (r SelectBlockRequest) ResolveBlock() (entities.ReservationBlock, error) {
	b := entities.ReservationBlock(strings.ToLower(strings.TrimSpace(r.Block)))
	if !b.Valid() {
		return "", ErrInvalidBlock
	}
	return b, nil
}

type NavigateRequest struct {
	Step string `json:"step" binding:"required"`
}
