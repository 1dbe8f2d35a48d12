package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/domain/schedule"
	"visitme_reservas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSlotTaken           = errors.New("slot already taken")
	ErrInvalidBookingInput = errors.New("invalid booking input")
	ErrInvalidBlock        = errors.New("invalid block")
	ErrDateInPast          = errors.New("date is in the past")
)

// BookingCommand carries everything the booking transaction needs. Cost and
// grace flag come precomputed from the eligibility engine; duration comes
// from the reserved space.
type BookingCommand struct {
	CommunityID   string
	SpaceID       string
	DepartmentID  string
	ResidentID    string
	Date          time.Time
	Block         entities.ReservationBlock
	DurationHours int
	CostApplied   float64
	IsGraceUse    bool
}

// IBookingUseCase is the reservation write path.

type IBookingUseCase interface {
	Book(ctx context.Context, cmd BookingCommand) (entities.Reservation, error)
}

type BookingUseCase struct {
	reservations interfaces.IReservationRepository
	communities  interfaces.ICommunityRepository

	now func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(reservations interfaces.IReservationRepository, communities interfaces.ICommunityRepository) *BookingUseCase {
	return &BookingUseCase{reservations: reservations, communities: communities, now: time.Now}
}

// Book re-validates the target slot and creates the reservation.
//
// The conflict guard (re-select before insert) is an explicit step, not
// folded into the insert: availability snapshots shown to the resident are
// advisory and may be stale, so this re-query is the last read before the
// write. The repository's conditional transact-write then converts a race
// lost inside the remaining window into ErrSlotTaken as well.
//
// Retrying after a failure is safe with respect to other residents (the
// guard reruns), but a retry after a success would duplicate the resident's
// own booking; callers track submission-in-flight state for that (the
// wizard does).
func (u *BookingUseCase) Book(ctx context.Context, cmd BookingCommand) (entities.Reservation, error) {
	if cmd.CommunityID == "" || cmd.SpaceID == "" || cmd.DepartmentID == "" || cmd.ResidentID == "" {
		return entities.Reservation{}, ErrInvalidBookingInput
	}
	if !cmd.Block.Valid() {
		return entities.Reservation{}, ErrInvalidBlock
	}
	if cmd.DurationHours <= 0 {
		return entities.Reservation{}, ErrInvalidBookingInput
	}

	policy, err := u.communities.GetPolicy(ctx, cmd.CommunityID)
	if err != nil {
		log.Printf("[booking][usecase] policy load failed community_id=%s err=%v", cmd.CommunityID, err)
		return entities.Reservation{}, err
	}
	loc, err := policy.Location()
	if err != nil {
		return entities.Reservation{}, err
	}
	today := schedule.DateOf(u.now(), loc)
	date := schedule.DateOf(cmd.Date, time.UTC)
	if date.Before(today) {
		return entities.Reservation{}, ErrDateInPast
	}

	// Conflict guard.
	log.Printf("[booking][usecase] conflict guard space_id=%s date=%s block=%s", cmd.SpaceID, schedule.FormatDate(date), cmd.Block)
	existing, err := u.reservations.FindActiveBySlot(ctx, cmd.CommunityID, cmd.SpaceID, date, cmd.Block)
	if err != nil {
		log.Printf("[booking][usecase] conflict guard query failed space_id=%s err=%v", cmd.SpaceID, err)
		return entities.Reservation{}, err
	}
	if existing.ID != "" {
		log.Printf("[booking][usecase] slot taken space_id=%s date=%s block=%s by=%s", cmd.SpaceID, schedule.FormatDate(date), cmd.Block, existing.ID)
		return entities.Reservation{}, ErrSlotTaken
	}

	r := entities.Reservation{
		ID:            uuid.NewString(),
		CommunityID:   cmd.CommunityID,
		SpaceID:       cmd.SpaceID,
		DepartmentID:  cmd.DepartmentID,
		ResidentID:    cmd.ResidentID,
		Date:          date,
		Block:         cmd.Block,
		DurationHours: cmd.DurationHours,
		Status:        entities.ReservationStatusAgendado,
		CostApplied:   cmd.CostApplied,
		IsGraceUse:    cmd.IsGraceUse,
		CreatedAt:     u.now().UTC(),
	}

	created, err := u.reservations.Create(ctx, r)
	if err != nil {
		if errors.Is(err, interfaces.ErrSlotUnavailable) {
			log.Printf("[booking][usecase] lost slot race space_id=%s date=%s block=%s", cmd.SpaceID, schedule.FormatDate(date), cmd.Block)
			return entities.Reservation{}, ErrSlotTaken
		}
		log.Printf("[booking][usecase] create failed space_id=%s err=%v", cmd.SpaceID, err)
		return entities.Reservation{}, err
	}
	log.Printf("[booking][usecase] reservation created id=%s space_id=%s date=%s block=%s cost=%.0f grace=%t",
		created.ID, created.SpaceID, schedule.FormatDate(created.Date), created.Block, created.CostApplied, created.IsGraceUse)
	return created, nil
}
