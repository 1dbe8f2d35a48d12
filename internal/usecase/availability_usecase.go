package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/domain/schedule"
	"visitme_reservas/internal/usecase/interfaces"
)

var (
	ErrInvalidCommunityID = errors.New("invalid community id")
	ErrInvalidSpaceID     = errors.New("invalid space id")
)

// IAvailabilityUseCase computes day-by-day occupancy of a common space over
// the forward window residents can book in.

type IAvailabilityUseCase interface {
	GetUpcoming(ctx context.Context, communityID, spaceID string) ([]entities.DayAvailability, error)
}

type AvailabilityUseCase struct {
	reservations interfaces.IReservationRepository
	communities  interfaces.ICommunityRepository

	now func() time.Time
}

var _ IAvailabilityUseCase = (*AvailabilityUseCase)(nil)

func NewAvailabilityUseCase(reservations interfaces.IReservationRepository, communities interfaces.ICommunityRepository) *AvailabilityUseCase {
	return &AvailabilityUseCase{reservations: reservations, communities: communities, now: time.Now}
}

// GetUpcoming returns the 30-day window starting today in the community
// timezone, one record per day with tri-state occupancy.
//
// The result is an advisory snapshot: the booking transaction re-checks the
// slot at write time, so a stale snapshot can cost the resident a retry but
// never a double booking. On any query failure the whole window fails; we
// never return a partially filled window.
func (u *AvailabilityUseCase) GetUpcoming(ctx context.Context, communityID, spaceID string) ([]entities.DayAvailability, error) {
	if communityID == "" {
		return nil, ErrInvalidCommunityID
	}
	if spaceID == "" {
		return nil, ErrInvalidSpaceID
	}

	policy, err := u.communities.GetPolicy(ctx, communityID)
	if err != nil {
		log.Printf("[availability][usecase] policy load failed community_id=%s err=%v", communityID, err)
		return nil, err
	}
	loc, err := policy.Location()
	if err != nil {
		log.Printf("[availability][usecase] bad community timezone community_id=%s tz=%q err=%v", communityID, policy.Timezone, err)
		return nil, err
	}

	today := schedule.DateOf(u.now(), loc)
	window := schedule.ForwardWindow(today, schedule.WindowDays)
	last := window[len(window)-1].Date

	rows, err := u.reservations.ListForSpaceBetween(ctx, communityID, spaceID, today, last)
	if err != nil {
		log.Printf("[availability][usecase] window query failed community_id=%s space_id=%s err=%v", communityID, spaceID, err)
		return nil, err
	}

	type occupancy struct{ am, pm bool }
	taken := make(map[string]*occupancy, len(rows))
	for _, r := range rows {
		if !r.Active() {
			// Cancelled rows are excluded by the query; anything else
			// unrecognized is skipped rather than rejected.
			continue
		}
		key := schedule.FormatDate(r.Date)
		occ := taken[key]
		if occ == nil {
			occ = &occupancy{}
			taken[key] = occ
		}
		switch r.Block {
		case entities.BlockMorning:
			occ.am = true
		case entities.BlockAfternoon:
			occ.pm = true
		}
	}

	out := make([]entities.DayAvailability, 0, len(window))
	for _, day := range window {
		var am, pm bool
		if occ := taken[schedule.FormatDate(day.Date)]; occ != nil {
			am, pm = occ.am, occ.pm
		}
		out = append(out, entities.DayAvailability{
			Date:       day.Date,
			Weekday:    day.Weekday,
			DayOfMonth: day.DayOfMonth,
			AMTaken:    am,
			PMTaken:    pm,
			Status:     entities.DeriveDayStatus(am, pm),
		})
	}
	return out, nil
}
