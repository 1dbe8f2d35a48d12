package handlers

import (
	"testing"
	"time"

	"visitme_reservas/internal/domain/schedule"
)

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := schedule.ParseDate(value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return d
}
