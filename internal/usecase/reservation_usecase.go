package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/domain/schedule"
	"visitme_reservas/internal/usecase/interfaces"
)

// CalendarEvent is the exportable description of one reservation, with the
// block window resolved in the community's timezone.
type CalendarEvent struct {
	Summary     string
	Start       time.Time
	End         time.Time
	Description string
}

// IReservationUseCase serves the resident's own reservation list and detail
// sheet. Everything is scoped to the acting resident: a reservation owned by
// someone else reads as not found.

type IReservationUseCase interface {
	ListByResident(ctx context.Context, communityID, residentID string) ([]entities.Reservation, error)
	GetOwn(ctx context.Context, reservationID, residentID string) (entities.Reservation, error)
	CalendarEvent(ctx context.Context, reservationID, residentID string) (CalendarEvent, error)
}

type ReservationUseCase struct {
	reservations interfaces.IReservationRepository
	spaces       interfaces.ICommonSpaceRepository
	communities  interfaces.ICommunityRepository
}

var _ IReservationUseCase = (*ReservationUseCase)(nil)

func NewReservationUseCase(
	reservations interfaces.IReservationRepository,
	spaces interfaces.ICommonSpaceRepository,
	communities interfaces.ICommunityRepository,
) *ReservationUseCase {
	return &ReservationUseCase{
		reservations: reservations,
		spaces:       spaces,
		communities:  communities,
	}
}

func (u *ReservationUseCase) ListByResident(ctx context.Context, communityID, residentID string) ([]entities.Reservation, error) {
	if communityID == "" {
		return nil, ErrInvalidCommunityID
	}
	if residentID == "" {
		return nil, ErrInvalidResidentID
	}
	return u.reservations.ListByResident(ctx, communityID, residentID)
}

func (u *ReservationUseCase) GetOwn(ctx context.Context, reservationID, residentID string) (entities.Reservation, error) {
	reservationID = strings.TrimSpace(reservationID)
	if reservationID == "" || residentID == "" {
		return entities.Reservation{}, ErrReservationNotFound
	}

	r, err := u.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return entities.Reservation{}, err
	}
	if r.ID == "" || r.ResidentID != residentID {
		return entities.Reservation{}, ErrReservationNotFound
	}
	return r, nil
}

// CalendarEvent resolves the reservation's block window in the community's
// timezone and labels it with the space name. Cancelled reservations are
// not exportable.
func (u *ReservationUseCase) CalendarEvent(ctx context.Context, reservationID, residentID string) (CalendarEvent, error) {
	r, err := u.GetOwn(ctx, reservationID, residentID)
	if err != nil {
		return CalendarEvent{}, err
	}
	if !r.Active() {
		return CalendarEvent{}, ErrReservationNotFound
	}

	policy, err := u.communities.GetPolicy(ctx, r.CommunityID)
	if err != nil {
		return CalendarEvent{}, err
	}
	loc, err := policy.Location()
	if err != nil {
		return CalendarEvent{}, err
	}

	summary := "Reserva de espacio común"
	space, err := u.spaces.GetByID(ctx, r.SpaceID)
	if err == nil && space.ID != "" {
		summary = "Reserva: " + space.Name
	}

	start, end := schedule.BlockWindow(r.Date, r.Block, r.DurationHours, loc)
	return CalendarEvent{
		Summary:     summary,
		Start:       start,
		End:         end,
		Description: fmt.Sprintf("Bloque %s, reserva %s", schedule.BlockLabel(r.Block), r.ID),
	}, nil
}
