package entities

import "time"

const defaultTimezone = "America/Santiago"

// CommunityPolicy carries the per-community reservation rules.
//
// Every temporal computation in the service goes through Location(): the
// host's local timezone is never consulted for date-boundary math, since the
// resident's device and the community can easily sit in different zones.

type CommunityPolicy struct {
	CommunityID string `json:"community_id"`

	// BookingBlockDays is the cooldown: the number of days a resident must
	// wait after the date of their last non-cancelled reservation before
	// booking again. Zero disables the cooldown.
	BookingBlockDays int `json:"booking_block_days"`

	// GraceDays is the number of fee-exempt bookings allowed per resident
	// per calendar month. Zero disables the allowance.
	GraceDays int `json:"grace_days"`

	// Timezone is an IANA zone name. Empty falls back to the platform
	// default zone.
	Timezone string `json:"timezone,omitempty"`
}

// Location resolves the community timezone.
func (p CommunityPolicy) Location() (*time.Location, error) {
	tz := p.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	return time.LoadLocation(tz)
}
