// Package calendar renders a reservation as a plain-text calendar event the
// mobile app can share or hand to the device calendar.
package calendar

import (
	"strings"
	"time"
)

const stampLayout = "20060102T150405"

// EventPayload is the exportable description of one reservation.
type EventPayload struct {
	Summary     string
	Start       time.Time
	End         time.Time
	Description string
}

// Render produces a minimal VCALENDAR document for the event. Text fields
// are escaped per the plain-text calendar grammar (RFC 5545 §3.3.11):
// backslash, newline, comma and semicolon are reserved.
func Render(e EventPayload) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//VisitMe//Reservas//ES\r\n")
	b.WriteString("BEGIN:VEVENT\r\n")
	b.WriteString("SUMMARY:" + EscapeText(e.Summary) + "\r\n")
	b.WriteString("DTSTART:" + e.Start.UTC().Format(stampLayout) + "Z\r\n")
	b.WriteString("DTEND:" + e.End.UTC().Format(stampLayout) + "Z\r\n")
	if e.Description != "" {
		b.WriteString("DESCRIPTION:" + EscapeText(e.Description) + "\r\n")
	}
	b.WriteString("END:VEVENT\r\n")
	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

// EscapeText escapes the characters the calendar grammar reserves in text
// values. Backslash must go first or it would re-escape the others.
func EscapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, ";", `\;`)
	return s
}
