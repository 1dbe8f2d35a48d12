package usecase

import (
	"errors"
	"time"

	"visitme_reservas/internal/domain/entities"
)

// WizardStep is one of the ordered steps of the booking flow.

type WizardStep string

const (
	StepSpace        WizardStep = "space"
	StepDepartment   WizardStep = "department"
	StepAvailability WizardStep = "availability"
	StepSchedule     WizardStep = "schedule"
)

var wizardStepOrder = []WizardStep{StepSpace, StepDepartment, StepAvailability, StepSchedule}

var (
	ErrStepLocked          = errors.New("step not reachable yet")
	ErrCooldownActive      = errors.New("booking cooldown active")
	ErrOperationInFlight   = errors.New("another operation is in flight")
	ErrWizardFinished      = errors.New("wizard already finished")
	ErrDayFull             = errors.New("day is fully booked")
	ErrDayUnavailable      = errors.New("day is outside the bookable window")
	ErrBlockTaken          = errors.New("block already taken for that day")
	ErrSelectionIncomplete = errors.New("booking selection incomplete")
	ErrNoEligibleDept      = errors.New("no department is allowed to reserve")
	ErrDeptNotEligible     = errors.New("department not eligible")
)

// BookingSummary is what the terminal success state carries for the
// confirmation screen.
type BookingSummary struct {
	Reservation entities.Reservation `json:"reservation"`
	SpaceName   string               `json:"space_name"`
	BlockLabel  string               `json:"block_label"`
}

// WizardState is the explicit finite state of one booking flow. All methods
// are pure state transitions with no I/O; the controller owns the remote
// calls and feeds their results in. The state is single-threaded by
// contract: exactly one async operation is in flight at a time, tracked by
// InFlight.

type WizardState struct {
	Step      WizardStep          `json:"step"`
	Completed map[WizardStep]bool `json:"completed"`

	// Cooldown, once reported blocked, locks every step after space until
	// time clears it. No client action can reset it.
	Cooldown CooldownStatus `json:"cooldown"`

	Space        entities.CommonSpace       `json:"space"`
	Departments  []entities.Department      `json:"departments"`
	DepartmentID string                     `json:"department_id,omitempty"`
	Days         []entities.DayAvailability `json:"days,omitempty"`
	Date         time.Time                  `json:"date,omitempty"`
	Block        entities.ReservationBlock  `json:"block,omitempty"`

	InFlight bool            `json:"in_flight"`
	Done     bool            `json:"done"`
	Summary  *BookingSummary `json:"summary,omitempty"`
}

func NewWizardState(cooldown CooldownStatus) WizardState {
	return WizardState{
		Step:      StepSpace,
		Completed: make(map[WizardStep]bool),
		Cooldown:  cooldown,
	}
}

func stepIndex(step WizardStep) int {
	for i, s := range wizardStepOrder {
		if s == step {
			return i
		}
	}
	return -1
}

// CanGo reports whether navigation to step is allowed: backward and staying
// put always are; forward jumps only through completed prerequisites; and an
// active cooldown seals off everything past the space step.
func (s *WizardState) CanGo(step WizardStep) bool {
	target := stepIndex(step)
	if target < 0 || s.Done {
		return false
	}
	if s.Cooldown.Blocked && step != StepSpace {
		return false
	}
	current := stepIndex(s.Step)
	if target <= current {
		return true
	}
	for _, prev := range wizardStepOrder[:target] {
		if !s.Completed[prev] {
			return false
		}
	}
	return true
}

// Go navigates to step if CanGo allows it.
func (s *WizardState) Go(step WizardStep) error {
	if s.Done {
		return ErrWizardFinished
	}
	if s.Cooldown.Blocked && step != StepSpace {
		return ErrCooldownActive
	}
	if !s.CanGo(step) {
		return ErrStepLocked
	}
	s.Step = step
	return nil
}

// SelectedDay returns the availability record for the chosen date.
func (s *WizardState) SelectedDay() (entities.DayAvailability, bool) {
	if s.Date.IsZero() {
		return entities.DayAvailability{}, false
	}
	for _, d := range s.Days {
		if d.Date.Equal(s.Date) {
			return d, true
		}
	}
	return entities.DayAvailability{}, false
}

// BlockEnabled reports whether the block control for b should be active: a
// day must be chosen and the block must still be free on it. Taken blocks
// are disabled outright, not validated at submit.
func (s *WizardState) BlockEnabled(b entities.ReservationBlock) bool {
	day, ok := s.SelectedDay()
	if !ok || !b.Valid() {
		return false
	}
	switch b {
	case entities.BlockMorning:
		return !day.AMTaken
	case entities.BlockAfternoon:
		return !day.PMTaken
	}
	return false
}

// ReadyToSubmit reports whether every step holds a valid selection.
func (s *WizardState) ReadyToSubmit() bool {
	for _, step := range wizardStepOrder {
		if !s.Completed[step] {
			return false
		}
	}
	return s.Block.Valid() && !s.Date.IsZero()
}

// setSpace records a space selection: any previously chosen day and block
// belong to the old space's availability and are discarded.
func (s *WizardState) setSpace(space entities.CommonSpace) {
	s.Space = space
	s.Date = time.Time{}
	s.Block = ""
	s.Days = nil
	s.Departments = nil
	s.DepartmentID = ""
	s.Completed[StepSpace] = true
	delete(s.Completed, StepDepartment)
	delete(s.Completed, StepAvailability)
	delete(s.Completed, StepSchedule)
}

// setDay records a day selection and clears any block chosen for a previous
// day. The caller has already verified the day is not full.
func (s *WizardState) setDay(date time.Time) {
	s.Date = date
	s.Block = ""
	s.Completed[StepAvailability] = true
	delete(s.Completed, StepSchedule)
	s.Step = StepSchedule
}
