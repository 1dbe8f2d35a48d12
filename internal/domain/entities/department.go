package entities

// Department links a resident to a unit inside a community. A resident may
// hold several links; each one gates reservation eligibility independently.

type Department struct {
	ID          string `json:"id"`
	CommunityID string `json:"community_id"`
	Label       string `json:"label"`

	// CanReserve is a per-resident override; ReservationsBlocked is a
	// department-level lock set by the administration.
	CanReserve          bool `json:"can_reserve"`
	ReservationsBlocked bool `json:"reservations_blocked"`

	Active bool `json:"active"`
}

// Eligible reports whether this link allows the resident to reserve.
func (d Department) Eligible() bool {
	return d.Active && d.CanReserve && !d.ReservationsBlocked
}
