package schedule

import (
	"testing"
	"time"

	"visitme_reservas/internal/domain/entities"
)

func santiago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestDateOfNormalizesAcrossDayBoundary(t *testing.T) {
	loc := santiago(t)

	// 2024-12-25 01:30 UTC is still 2024-12-24 late evening in Santiago.
	instant := time.Date(2024, 12, 25, 1, 30, 0, 0, time.UTC)
	got := DateOf(instant, loc)

	want := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", FormatDate(want), FormatDate(got))
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)

	if got := DaysBetween(a, b); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := DaysBetween(b, a); got != -4 {
		t.Fatalf("expected -4, got %d", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestForwardWindow(t *testing.T) {
	today := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC) // a Tuesday

	window := ForwardWindow(today, WindowDays)
	if len(window) != WindowDays {
		t.Fatalf("expected %d days, got %d", WindowDays, len(window))
	}
	if !window[0].Date.Equal(today) {
		t.Fatalf("window must start today, got %s", FormatDate(window[0].Date))
	}
	if window[0].Weekday != "mar" || window[0].DayOfMonth != 24 {
		t.Fatalf("unexpected first day labels: %+v", window[0])
	}

	// Contiguity and month rollover.
	for i := 1; i < len(window); i++ {
		if DaysBetween(window[i-1].Date, window[i].Date) != 1 {
			t.Fatalf("window not contiguous at index %d", i)
		}
	}
	if window[8].DayOfMonth != 1 || window[8].Date.Month() != time.January {
		t.Fatalf("expected January 1st at index 8, got %+v", window[8])
	}
}

func TestMonthStartInstant(t *testing.T) {
	loc := santiago(t)
	day := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)

	got := MonthStartInstant(day, loc)
	want := time.Date(2024, 12, 1, 0, 0, 0, 0, loc).UTC()
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
	// Santiago runs on DST in December (UTC-3): local midnight is 03:00 UTC.
	if got.Hour() != 3 {
		t.Fatalf("expected 03:00 UTC, got %s", got)
	}
}

func TestBlockWindow(t *testing.T) {
	loc := santiago(t)
	date := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)

	start, end := BlockWindow(date, entities.BlockAfternoon, 6, loc)
	if start.Hour() != 15 || start.Day() != 24 {
		t.Fatalf("unexpected start: %s", start)
	}
	if end.Hour() != 21 {
		t.Fatalf("unexpected end: %s", end)
	}

	start, _ = BlockWindow(date, entities.BlockMorning, 6, loc)
	if start.Hour() != 8 {
		t.Fatalf("unexpected morning start: %s", start)
	}
}

func TestBlockLabels(t *testing.T) {
	if BlockLabel(entities.BlockMorning) != "Mañana" {
		t.Fatalf("unexpected morning label")
	}
	if BlockLabel(entities.BlockAfternoon) != "Tarde" {
		t.Fatalf("unexpected afternoon label")
	}
}
