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

var ErrInvalidResidentID = errors.New("invalid resident id")

// CooldownStatus is a policy state, not an error: a blocked resident sees an
// informational notice with the exact remaining wait, and nothing but the
// passage of time clears it.
type CooldownStatus struct {
	Blocked       bool `json:"blocked"`
	RemainingDays int  `json:"remaining_days"`
}

// CostQuote is the charge decision for a prospective booking.
type CostQuote struct {
	CostApplied float64 `json:"cost_applied"`
	IsGraceUse  bool    `json:"is_grace_use"`
}

// IEligibilityUseCase runs the two policy checks that gate a booking: the
// cooldown between consecutive reservations and the monthly grace-day
// fee exemption.
//
// Both checks fail closed: any query failure propagates so callers block
// progress instead of risking a wrong charge or a forbidden booking.

type IEligibilityUseCase interface {
	CheckCooldown(ctx context.Context, communityID, residentID string) (CooldownStatus, error)
	QuoteCost(ctx context.Context, communityID, residentID string, space entities.CommonSpace) (CostQuote, error)
}

type EligibilityUseCase struct {
	reservations interfaces.IReservationRepository
	communities  interfaces.ICommunityRepository

	now func() time.Time
}

var _ IEligibilityUseCase = (*EligibilityUseCase)(nil)

func NewEligibilityUseCase(reservations interfaces.IReservationRepository, communities interfaces.ICommunityRepository) *EligibilityUseCase {
	return &EligibilityUseCase{reservations: reservations, communities: communities, now: time.Now}
}

// CheckCooldown compares today against the date of the resident's last
// non-cancelled reservation, any space. The check is global per resident:
// booking the BBQ area starts the cooldown for the gym too.
func (u *EligibilityUseCase) CheckCooldown(ctx context.Context, communityID, residentID string) (CooldownStatus, error) {
	if communityID == "" {
		return CooldownStatus{}, ErrInvalidCommunityID
	}
	if residentID == "" {
		return CooldownStatus{}, ErrInvalidResidentID
	}

	policy, err := u.communities.GetPolicy(ctx, communityID)
	if err != nil {
		log.Printf("[eligibility][usecase] policy load failed community_id=%s err=%v", communityID, err)
		return CooldownStatus{}, err
	}
	if policy.BookingBlockDays <= 0 {
		return CooldownStatus{}, nil
	}

	last, err := u.reservations.LastByResident(ctx, communityID, residentID)
	if err != nil {
		log.Printf("[eligibility][usecase] last reservation query failed resident_id=%s err=%v", residentID, err)
		return CooldownStatus{}, err
	}
	if last.ID == "" {
		return CooldownStatus{}, nil
	}

	loc, err := policy.Location()
	if err != nil {
		return CooldownStatus{}, err
	}
	today := schedule.DateOf(u.now(), loc)

	elapsed := schedule.DaysBetween(last.Date, today)
	if elapsed >= policy.BookingBlockDays {
		return CooldownStatus{}, nil
	}
	status := CooldownStatus{Blocked: true, RemainingDays: policy.BookingBlockDays - elapsed}
	log.Printf("[eligibility][usecase] cooldown active resident_id=%s last_date=%s remaining_days=%d",
		residentID, schedule.FormatDate(last.Date), status.RemainingDays)
	return status, nil
}

// QuoteCost decides what a new booking of the given space would cost right
// now. A free space is always 0 and never consumes the grace allowance. For
// a paid space, the resident's bookings created since the start of the
// current month (community timezone) are counted: under the allowance the
// booking is exempt, at or over it the full event price applies.
//
// The quote is computed on demand every time; it must not be cached across
// wizard sessions since the resident's history may have changed.
func (u *EligibilityUseCase) QuoteCost(ctx context.Context, communityID, residentID string, space entities.CommonSpace) (CostQuote, error) {
	if communityID == "" {
		return CostQuote{}, ErrInvalidCommunityID
	}
	if residentID == "" {
		return CostQuote{}, ErrInvalidResidentID
	}

	if space.EventPrice <= 0 {
		return CostQuote{CostApplied: 0, IsGraceUse: false}, nil
	}

	policy, err := u.communities.GetPolicy(ctx, communityID)
	if err != nil {
		log.Printf("[eligibility][usecase] policy load failed community_id=%s err=%v", communityID, err)
		return CostQuote{}, err
	}
	if policy.GraceDays <= 0 {
		return CostQuote{CostApplied: space.EventPrice}, nil
	}

	loc, err := policy.Location()
	if err != nil {
		return CostQuote{}, err
	}
	today := schedule.DateOf(u.now(), loc)
	monthStart := schedule.MonthStartInstant(today, loc)

	// Counting is by created_at (booking time), not by reservation date: a
	// booking made today for a date next month consumes this month's
	// allowance.
	used, err := u.reservations.CountCreatedSince(ctx, communityID, residentID, monthStart)
	if err != nil {
		log.Printf("[eligibility][usecase] grace count failed resident_id=%s err=%v", residentID, err)
		return CostQuote{}, err
	}

	if used < policy.GraceDays {
		log.Printf("[eligibility][usecase] grace day granted resident_id=%s used=%d allowance=%d", residentID, used, policy.GraceDays)
		return CostQuote{CostApplied: 0, IsGraceUse: true}, nil
	}
	return CostQuote{CostApplied: space.EventPrice, IsGraceUse: false}, nil
}
