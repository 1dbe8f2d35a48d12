package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/domain/schedule"
	"visitme_reservas/internal/usecase/interfaces"
)

const minCancellationReasonLen = 5

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReasonTooShort      = errors.New("cancellation reason too short")
	ErrAlreadyCancelled    = errors.New("reservation already cancelled")
	ErrCancellationCutoff  = errors.New("same-day or past reservations cannot be cancelled")
)

// ICancellationUseCase voids an existing reservation, freeing its slot.

type ICancellationUseCase interface {
	Cancel(ctx context.Context, reservationID, residentID, reason string) (entities.Reservation, error)
}

type CancellationUseCase struct {
	reservations interfaces.IReservationRepository
	communities  interfaces.ICommunityRepository

	now func() time.Time
}

var _ ICancellationUseCase = (*CancellationUseCase)(nil)

func NewCancellationUseCase(reservations interfaces.IReservationRepository, communities interfaces.ICommunityRepository) *CancellationUseCase {
	return &CancellationUseCase{reservations: reservations, communities: communities, now: time.Now}
}

// Cancel validates the justification and the same-day cutoff before any
// write, then runs the transactional status update that also releases the
// slot item. Ownership is enforced twice: a cheap check here for a clear
// 404, and a conditional expression at the data layer so a client-supplied
// id can never flip someone else's row. A reservation the resident does not
// own reports not-found, never forbidden, to avoid leaking its existence.
//
// Cost bookkeeping is not reversed; refunds are outside this service.
func (u *CancellationUseCase) Cancel(ctx context.Context, reservationID, residentID, reason string) (entities.Reservation, error) {
	reservationID = strings.TrimSpace(reservationID)
	if reservationID == "" {
		return entities.Reservation{}, ErrReservationNotFound
	}
	if residentID == "" {
		return entities.Reservation{}, ErrInvalidResidentID
	}
	reason = strings.TrimSpace(reason)
	if len([]rune(reason)) < minCancellationReasonLen {
		return entities.Reservation{}, ErrReasonTooShort
	}

	r, err := u.reservations.GetByID(ctx, reservationID)
	if err != nil {
		log.Printf("[cancellation][usecase] load failed reservation_id=%s err=%v", reservationID, err)
		return entities.Reservation{}, err
	}
	if r.ID == "" || r.ResidentID != residentID {
		return entities.Reservation{}, ErrReservationNotFound
	}
	if r.Status == entities.ReservationStatusCancelado {
		return entities.Reservation{}, ErrAlreadyCancelled
	}

	policy, err := u.communities.GetPolicy(ctx, r.CommunityID)
	if err != nil {
		log.Printf("[cancellation][usecase] policy load failed community_id=%s err=%v", r.CommunityID, err)
		return entities.Reservation{}, err
	}
	loc, err := policy.Location()
	if err != nil {
		return entities.Reservation{}, err
	}
	today := schedule.DateOf(u.now(), loc)
	if !r.Date.After(today) {
		return entities.Reservation{}, ErrCancellationCutoff
	}

	cancelled, err := u.reservations.Cancel(ctx, reservationID, residentID, reason)
	if err != nil {
		// Surfaced to the caller with a retry affordance; a silently
		// swallowed failure would leave the resident believing the slot
		// was released.
		log.Printf("[cancellation][usecase] cancel write failed reservation_id=%s err=%v", reservationID, err)
		return entities.Reservation{}, err
	}
	if cancelled.ID == "" {
		// Conditional update rejected: row changed under us.
		return entities.Reservation{}, ErrReservationNotFound
	}
	log.Printf("[cancellation][usecase] reservation cancelled id=%s date=%s block=%s", cancelled.ID, schedule.FormatDate(cancelled.Date), cancelled.Block)
	return cancelled, nil
}
