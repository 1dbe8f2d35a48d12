package entities

import "time"

// DayStatus is the tri-state occupancy of one day of a common space.

type DayStatus string

const (
	DayStatusAvailable DayStatus = "available"
	DayStatusPartial   DayStatus = "partial"
	DayStatusFull      DayStatus = "full"
)

// DeriveDayStatus collapses per-block occupancy into the tri-state status.
func DeriveDayStatus(amTaken, pmTaken bool) DayStatus {
	switch {
	case amTaken && pmTaken:
		return DayStatusFull
	case amTaken || pmTaken:
		return DayStatusPartial
	default:
		return DayStatusAvailable
	}
}

// DayAvailability is one row of the 30-day availability window shown to the
// resident. Date is a pure calendar day (UTC midnight).

type DayAvailability struct {
	Date       time.Time `json:"date"`
	Weekday    string    `json:"weekday"`
	DayOfMonth int       `json:"day_of_month"`
	AMTaken    bool      `json:"am_taken"`
	PMTaken    bool      `json:"pm_taken"`
	Status     DayStatus `json:"status"`
}
