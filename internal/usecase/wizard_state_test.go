package usecase

import (
	"errors"
	"testing"

	"visitme_reservas/internal/domain/entities"
)

func TestWizardState_Navigation(t *testing.T) {
	t.Run("forward jump needs completed prerequisites", func(t *testing.T) {
		s := NewWizardState(CooldownStatus{})

		if s.CanGo(StepSchedule) {
			t.Fatal("schedule must be locked before any selection")
		}
		if err := s.Go(StepAvailability); !errors.Is(err, ErrStepLocked) {
			t.Fatalf("expected ErrStepLocked, got %v", err)
		}

		s.setSpace(entities.CommonSpace{ID: "sp-1"})
		s.Completed[StepDepartment] = true
		if !s.CanGo(StepAvailability) {
			t.Fatal("availability should open once space and department complete")
		}
		if s.CanGo(StepSchedule) {
			t.Fatal("schedule still locked until a day is chosen")
		}
	})

	t.Run("backward navigation is always allowed", func(t *testing.T) {
		s := NewWizardState(CooldownStatus{})
		s.setSpace(entities.CommonSpace{ID: "sp-1"})
		s.Completed[StepDepartment] = true
		s.setDay(mustDate(t, "2026-03-12"))

		if err := s.Go(StepSpace); err != nil {
			t.Fatalf("backward navigation failed: %v", err)
		}
		if s.Step != StepSpace {
			t.Fatalf("expected step space, got %s", s.Step)
		}
		// Earlier selections survive going back.
		if !s.Completed[StepAvailability] {
			t.Fatal("completed steps must survive backward navigation")
		}
	})

	t.Run("cooldown seals everything past space", func(t *testing.T) {
		s := NewWizardState(CooldownStatus{Blocked: true, RemainingDays: 3})
		s.setSpace(entities.CommonSpace{ID: "sp-1"})

		for _, step := range []WizardStep{StepDepartment, StepAvailability, StepSchedule} {
			if s.CanGo(step) {
				t.Fatalf("step %s must be sealed under cooldown", step)
			}
		}
		if err := s.Go(StepDepartment); !errors.Is(err, ErrCooldownActive) {
			t.Fatalf("expected ErrCooldownActive, got %v", err)
		}
		if !s.CanGo(StepSpace) {
			t.Fatal("space step must stay reachable under cooldown")
		}
	})

	t.Run("done state refuses navigation", func(t *testing.T) {
		s := NewWizardState(CooldownStatus{})
		s.Done = true
		if s.CanGo(StepSpace) {
			t.Fatal("finished wizard must not navigate")
		}
		if err := s.Go(StepSpace); !errors.Is(err, ErrWizardFinished) {
			t.Fatalf("expected ErrWizardFinished, got %v", err)
		}
	})
}

func TestWizardState_Selections(t *testing.T) {
	t.Run("reselecting the space discards day and block", func(t *testing.T) {
		s := NewWizardState(CooldownStatus{})
		s.setSpace(entities.CommonSpace{ID: "sp-1"})
		s.Completed[StepDepartment] = true
		s.setDay(mustDate(t, "2026-03-12"))
		s.Block = entities.BlockMorning
		s.Completed[StepSchedule] = true

		s.setSpace(entities.CommonSpace{ID: "sp-2"})

		if !s.Date.IsZero() || s.Block != "" {
			t.Fatalf("expected day and block cleared, got date=%s block=%s", s.Date, s.Block)
		}
		if s.Completed[StepDepartment] || s.Completed[StepAvailability] || s.Completed[StepSchedule] {
			t.Fatal("later completions must be discarded with the space")
		}
	})

	t.Run("changing the day clears the block", func(t *testing.T) {
		s := NewWizardState(CooldownStatus{})
		s.setSpace(entities.CommonSpace{ID: "sp-1"})
		s.Completed[StepDepartment] = true
		s.setDay(mustDate(t, "2026-03-12"))
		s.Block = entities.BlockMorning
		s.Completed[StepSchedule] = true

		s.setDay(mustDate(t, "2026-03-13"))

		if s.Block != "" || s.Completed[StepSchedule] {
			t.Fatal("block selection must not survive a day change")
		}
		if s.Step != StepSchedule {
			t.Fatalf("expected step schedule, got %s", s.Step)
		}
	})

	t.Run("block controls follow the selected day's occupancy", func(t *testing.T) {
		s := NewWizardState(CooldownStatus{})
		s.Days = []entities.DayAvailability{
			{Date: mustDate(t, "2026-03-12"), AMTaken: true, Status: entities.DayStatusPartial},
		}
		s.Date = mustDate(t, "2026-03-12")

		if s.BlockEnabled(entities.BlockMorning) {
			t.Fatal("taken AM block must render disabled")
		}
		if !s.BlockEnabled(entities.BlockAfternoon) {
			t.Fatal("free PM block must render enabled")
		}
	})

	t.Run("ready to submit requires every step", func(t *testing.T) {
		s := NewWizardState(CooldownStatus{})
		s.setSpace(entities.CommonSpace{ID: "sp-1"})
		s.Completed[StepDepartment] = true
		s.setDay(mustDate(t, "2026-03-12"))
		if s.ReadyToSubmit() {
			t.Fatal("missing block must block submission")
		}
		s.Block = entities.BlockAfternoon
		s.Completed[StepSchedule] = true
		if !s.ReadyToSubmit() {
			t.Fatal("complete selection must be submittable")
		}
	})
}
