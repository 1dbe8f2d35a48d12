// Package schedule is the temporal block model: pure calendar-date and
// half-day-block arithmetic in an explicit community timezone. Nothing here
// touches storage or the network, and nothing here ever reads the host's
// local timezone.
package schedule

import (
	"time"

	"visitme_reservas/internal/domain/entities"
)

// DateLayout is the wire/storage format for pure calendar dates.
const DateLayout = "2006-01-02"

// WindowDays is the length of the forward availability window offered to
// residents.
const WindowDays = 30

// Block start hours in community local time. The morning block runs roughly
// 08:00-14:00 and the afternoon block 15:00-21:00; the exact end depends on
// the space's configured block duration. These values feed display and
// calendar export only, never conflict detection.
const (
	morningStartHour   = 8
	afternoonStartHour = 15
)

var blockLabels = map[entities.ReservationBlock]string{
	entities.BlockMorning:   "Mañana",
	entities.BlockAfternoon: "Tarde",
}

// Spanish short weekday names, indexed by time.Weekday (Sunday first).
var weekdayShort = [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}

// Day is one entry of the forward window.
type Day struct {
	Date       time.Time
	Weekday    string
	DayOfMonth int
}

// DateOf returns the calendar day that the instant t falls on in loc,
// normalized to UTC midnight. All date comparisons in the service go through
// this normalization so a booking made near a day boundary cannot land on
// the wrong calendar day.
func DateOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a DateLayout string into a normalized calendar day.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a normalized calendar day in the storage format.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// DaysBetween returns to - from in whole calendar days. Both arguments must
// be normalized days (see DateOf).
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// MonthStart returns the first calendar day of the month that day falls in.
func MonthStart(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthStartInstant returns the instant the current month began in loc,
// expressed in UTC. Grace-day counting compares created_at timestamps
// against this instant.
func MonthStartInstant(day time.Time, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, loc).UTC()
}

// ForwardWindow produces the fixed-length run of calendar days starting at
// today, each labeled for display.
func ForwardWindow(today time.Time, days int) []Day {
	out := make([]Day, 0, days)
	for i := 0; i < days; i++ {
		d := today.AddDate(0, 0, i)
		out = append(out, Day{
			Date:       d,
			Weekday:    weekdayShort[int(d.Weekday())],
			DayOfMonth: d.Day(),
		})
	}
	return out
}

// BlockLabel returns the human label for a block.
func BlockLabel(b entities.ReservationBlock) string {
	return blockLabels[b]
}

// BlockStartHour returns the local start hour of a block.
func BlockStartHour(b entities.ReservationBlock) int {
	if b == entities.BlockAfternoon {
		return afternoonStartHour
	}
	return morningStartHour
}

// BlockWindow resolves the local start and end instants of a reservation's
// block for calendar export. durationHours comes from the reserved space.
func BlockWindow(date time.Time, b entities.ReservationBlock, durationHours int, loc *time.Location) (start, end time.Time) {
	start = time.Date(date.Year(), date.Month(), date.Day(), BlockStartHour(b), 0, 0, 0, loc)
	end = start.Add(time.Duration(durationHours) * time.Hour)
	return start, end
}
