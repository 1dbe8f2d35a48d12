package response

import (
	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/domain/schedule"
)

type DayAvailabilityResponse struct {
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	DayOfMonth int    `json:"day_of_month"`
	AMTaken    bool   `json:"am_taken"`
	PMTaken    bool   `json:"pm_taken"`
	Status     string `json:"status"`
}

func FromDayAvailability(d entities.DayAvailability) DayAvailabilityResponse {
	return DayAvailabilityResponse{
		Date:       schedule.FormatDate(d.Date),
		Weekday:    d.Weekday,
		DayOfMonth: d.DayOfMonth,
		AMTaken:    d.AMTaken,
		PMTaken:    d.PMTaken,
		Status:     string(d.Status),
	}
}

func FromAvailabilityWindow(days []entities.DayAvailability) []DayAvailabilityResponse {
	out := make([]DayAvailabilityResponse, 0, len(days))
	for _, d := range days {
		out = append(out, FromDayAvailability(d))
	}
	return out
}

type CommonSpaceResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description,omitempty"`
	EventPrice         float64 `json:"event_price"`
	BlockDurationHours int     `json:"block_duration_hours"`
	ImageRef           string  `json:"image_ref,omitempty"`
}

func FromCommonSpace(s entities.CommonSpace) CommonSpaceResponse {
	return CommonSpaceResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Description:        s.Description,
		EventPrice:         s.EventPrice,
		BlockDurationHours: s.BlockDurationHours,
		ImageRef:           s.ImageRef,
	}
}

func FromCommonSpaces(ss []entities.CommonSpace) []CommonSpaceResponse {
	out := make([]CommonSpaceResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromCommonSpace(s))
	}
	return out
}

type DepartmentResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func FromDepartments(ds []entities.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, DepartmentResponse{ID: d.ID, Label: d.Label})
	}
	return out
}
