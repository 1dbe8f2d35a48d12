package response

import (
	"visitme_reservas/internal/domain/schedule"
	"visitme_reservas/internal/usecase"
)

// WizardResponse is the serialized view of a wizard session the mobile
// client renders after every interaction.
type WizardResponse struct {
	SessionID     string                    `json:"session_id"`
	Step          string                    `json:"step"`
	Completed     []string                  `json:"completed"`
	Cooldown      usecase.CooldownStatus    `json:"cooldown"`
	Spaces        []CommonSpaceResponse     `json:"spaces,omitempty"`
	SpaceID       string                    `json:"space_id,omitempty"`
	Departments   []DepartmentResponse      `json:"departments,omitempty"`
	DepartmentID  string                    `json:"department_id,omitempty"`
	Days          []DayAvailabilityResponse `json:"days,omitempty"`
	Date          string                    `json:"date,omitempty"`
	Block         string                    `json:"block,omitempty"`
	InFlight      bool                      `json:"in_flight"`
	Done          bool                      `json:"done"`
	Summary       *BookingSummaryResponse   `json:"summary,omitempty"`
}

type BookingSummaryResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	SpaceName   string              `json:"space_name"`
	BlockLabel  string              `json:"block_label"`
}

func FromWizardSession(s *usecase.WizardSession) WizardResponse {
	state := s.Snapshot()

	completed := make([]string, 0, len(state.Completed))
	for _, step := range []usecase.WizardStep{usecase.StepSpace, usecase.StepDepartment, usecase.StepAvailability, usecase.StepSchedule} {
		if state.Completed[step] {
			completed = append(completed, string(step))
		}
	}

	out := WizardResponse{
		SessionID:    s.ID,
		Step:         string(state.Step),
		Completed:    completed,
		Cooldown:     state.Cooldown,
		Spaces:       FromCommonSpaces(s.Spaces),
		SpaceID:      state.Space.ID,
		Departments:  FromDepartments(state.Departments),
		DepartmentID: state.DepartmentID,
		Days:         FromAvailabilityWindow(state.Days),
		Block:        string(state.Block),
		InFlight:     state.InFlight,
		Done:         state.Done,
	}
	if !state.Date.IsZero() {
		out.Date = schedule.FormatDate(state.Date)
	}
	if state.Summary != nil {
		out.Summary = &BookingSummaryResponse{
			Reservation: FromReservation(state.Summary.Reservation),
			SpaceName:   state.Summary.SpaceName,
			BlockLabel:  state.Summary.BlockLabel,
		}
	}
	return out
}
