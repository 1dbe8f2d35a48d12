package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/domain/schedule"

	"github.com/google/uuid"
)

// WizardSession is one resident's booking flow in progress. The mutex makes
// the cooperative single-threaded contract hold even when the mobile client
// fires overlapping HTTP calls: each controller operation owns the session
// for its duration.

type WizardSession struct {
	ID          string
	CommunityID string
	ResidentID  string

	mu    sync.Mutex
	State WizardState

	// Spaces is the catalog snapshot the space step renders.
	Spaces []entities.CommonSpace
}

// Snapshot returns a deep copy of the state safe to serialize without
// holding the session: the completed set and the fetched slices are cloned
// so a concurrent operation on the same session never mutates what a
// response writer is iterating.
func (s *WizardSession) Snapshot() WizardState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.State
	state.Completed = make(map[WizardStep]bool, len(s.State.Completed))
	for step, done := range s.State.Completed {
		state.Completed[step] = done
	}
	if s.State.Departments != nil {
		state.Departments = append([]entities.Department(nil), s.State.Departments...)
	}
	if s.State.Days != nil {
		state.Days = append([]entities.DayAvailability(nil), s.State.Days...)
	}
	if s.State.Summary != nil {
		summary := *s.State.Summary
		state.Summary = &summary
	}
	return state
}

// WizardController orchestrates the booking wizard against the catalog,
// eligibility, availability and booking use cases. Transitions themselves
// live on WizardState; the controller only decides when remote results flow
// into them.

type WizardController struct {
	catalog      ICatalogUseCase
	eligibility  IEligibilityUseCase
	availability IAvailabilityUseCase
	booking      IBookingUseCase
}

func NewWizardController(catalog ICatalogUseCase, eligibility IEligibilityUseCase, availability IAvailabilityUseCase, booking IBookingUseCase) *WizardController {
	return &WizardController{catalog: catalog, eligibility: eligibility, availability: availability, booking: booking}
}

// Start opens a fresh session: the cooldown check runs up front and, when
// blocked, seals every step past space before the resident selects anything.
// A failing check blocks the start entirely; eligibility is never assumed.
func (c *WizardController) Start(ctx context.Context, communityID, residentID string) (*WizardSession, error) {
	cooldown, err := c.eligibility.CheckCooldown(ctx, communityID, residentID)
	if err != nil {
		return nil, err
	}

	spaces, err := c.catalog.ListSpaces(ctx, communityID)
	if err != nil {
		return nil, err
	}

	session := &WizardSession{
		ID:          uuid.NewString(),
		CommunityID: communityID,
		ResidentID:  residentID,
		State:       NewWizardState(cooldown),
		Spaces:      spaces,
	}
	log.Printf("[wizard][controller] session started id=%s resident_id=%s cooldown_blocked=%t", session.ID, residentID, cooldown.Blocked)
	return session, nil
}

// SelectSpace records the chosen space and refreshes departments and
// availability for it. A previously chosen day or block always belongs to
// another space's calendar and is discarded before anything is fetched, so
// stale availability is never shown against the new space.
//
// Under an active cooldown the selection is recorded but the wizard stays on
// the space step; the cooldown notice carries the remaining days.
func (c *WizardController) SelectSpace(ctx context.Context, s *WizardSession, spaceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State.Done {
		return ErrWizardFinished
	}
	if s.State.InFlight {
		return ErrOperationInFlight
	}

	space, err := c.catalog.GetSpace(ctx, s.CommunityID, spaceID)
	if err != nil {
		return err
	}
	s.State.setSpace(space)

	if s.State.Cooldown.Blocked {
		log.Printf("[wizard][controller] cooldown blocks advance session=%s remaining_days=%d", s.ID, s.State.Cooldown.RemainingDays)
		return nil
	}

	departments, derr := c.catalog.EligibleDepartments(ctx, s.CommunityID, s.ResidentID)
	var days []entities.DayAvailability
	if derr == nil {
		days, derr = c.availability.GetUpcoming(ctx, s.CommunityID, space.ID)
	}
	if derr != nil {
		// Stay on the space step; the client shows a retry control instead
		// of an empty calendar.
		return derr
	}

	s.State.Departments = departments
	s.State.Days = days
	if len(departments) == 0 {
		return ErrNoEligibleDept
	}

	s.State.Step = StepDepartment
	if len(departments) == 1 {
		// A resident with a single eligible unit skips the department step.
		s.State.DepartmentID = departments[0].ID
		s.State.Completed[StepDepartment] = true
		s.State.Step = StepAvailability
		log.Printf("[wizard][controller] auto-selected department session=%s department_id=%s", s.ID, departments[0].ID)
	}
	return nil
}

// SelectDepartment picks one of the resident's eligible departments.
func (c *WizardController) SelectDepartment(s *WizardSession, departmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State.Done {
		return ErrWizardFinished
	}
	if s.State.Cooldown.Blocked {
		return ErrCooldownActive
	}
	if !s.State.Completed[StepSpace] {
		return ErrStepLocked
	}

	for _, d := range s.State.Departments {
		if d.ID == departmentID {
			s.State.DepartmentID = d.ID
			s.State.Completed[StepDepartment] = true
			s.State.Step = StepAvailability
			return nil
		}
	}
	return ErrDeptNotEligible
}

// SelectDay picks a date from the loaded window. A full day is refused with
// no state change at all; any other day resets the block choice and moves to
// the schedule step.
func (c *WizardController) SelectDay(s *WizardSession, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State.Done {
		return ErrWizardFinished
	}
	if s.State.Cooldown.Blocked {
		return ErrCooldownActive
	}
	if !s.State.Completed[StepDepartment] {
		return ErrStepLocked
	}

	date = schedule.DateOf(date, time.UTC)
	for _, d := range s.State.Days {
		if !d.Date.Equal(date) {
			continue
		}
		if d.Status == entities.DayStatusFull {
			return ErrDayFull
		}
		s.State.setDay(d.Date)
		return nil
	}
	return ErrDayUnavailable
}

// SelectBlock picks the half-day block. Taken blocks are rejected here
// because their controls render disabled; reaching this error means the
// client is out of sync.
func (c *WizardController) SelectBlock(s *WizardSession, block entities.ReservationBlock) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State.Done {
		return ErrWizardFinished
	}
	if !s.State.Completed[StepAvailability] {
		return ErrStepLocked
	}
	if !block.Valid() {
		return ErrInvalidBlock
	}
	if !s.State.BlockEnabled(block) {
		return ErrBlockTaken
	}
	s.State.Block = block
	s.State.Completed[StepSchedule] = true
	return nil
}

// Navigate moves between steps under the gating rules.
func (c *WizardController) Navigate(s *WizardSession, step WizardStep) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.State.Go(step)
}

// Submit quotes the cost and runs the booking transaction. The session
// mutex is what serializes double-taps: the second attempt runs only after
// the first finished and then hits the Done guard. The in-flight flag is
// the state machine's own contract, honored here for callers that drive
// WizardState directly. On a lost slot race the window is re-fetched, the
// block selection cleared, and the resident re-picks; on any other failure
// the wizard stays on schedule with its state intact for a user-initiated
// retry.
func (c *WizardController) Submit(ctx context.Context, s *WizardSession) (entities.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State.Done {
		return entities.Reservation{}, ErrWizardFinished
	}
	if s.State.InFlight {
		return entities.Reservation{}, ErrOperationInFlight
	}
	if s.State.Cooldown.Blocked {
		return entities.Reservation{}, ErrCooldownActive
	}
	if !s.State.ReadyToSubmit() {
		return entities.Reservation{}, ErrSelectionIncomplete
	}

	s.State.InFlight = true
	defer func() { s.State.InFlight = false }()

	// Quoted at submit time, never cached: the resident's history may have
	// changed since the wizard opened.
	quote, err := c.eligibility.QuoteCost(ctx, s.CommunityID, s.ResidentID, s.State.Space)
	if err != nil {
		return entities.Reservation{}, err
	}

	created, err := c.booking.Book(ctx, BookingCommand{
		CommunityID:   s.CommunityID,
		SpaceID:       s.State.Space.ID,
		DepartmentID:  s.State.DepartmentID,
		ResidentID:    s.ResidentID,
		Date:          s.State.Date,
		Block:         s.State.Block,
		DurationHours: s.State.Space.BlockDurationHours,
		CostApplied:   quote.CostApplied,
		IsGraceUse:    quote.IsGraceUse,
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			s.State.Block = ""
			delete(s.State.Completed, StepSchedule)
			if days, ferr := c.availability.GetUpcoming(ctx, s.CommunityID, s.State.Space.ID); ferr == nil {
				s.State.Days = days
			} else {
				log.Printf("[wizard][controller] availability refresh failed session=%s err=%v", s.ID, ferr)
			}
		}
		return entities.Reservation{}, err
	}

	s.State.Done = true
	s.State.Summary = &BookingSummary{
		Reservation: created,
		SpaceName:   s.State.Space.Name,
		BlockLabel:  schedule.BlockLabel(created.Block),
	}
	log.Printf("[wizard][controller] booking confirmed session=%s reservation_id=%s", s.ID, created.ID)
	return created, nil
}
