package entities

// CommonSpace is a reservable shared resource owned by a community (a
// multi-use room, gym, BBQ area, ...). It is immutable during a booking
// session: the wizard snapshots price and duration when the space is picked.

type CommonSpace struct {
	ID          string `json:"id"`
	CommunityID string `json:"community_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// EventPrice is the per-event charge in the community currency.
	// Zero means the space is free and never consumes a grace day.
	EventPrice float64 `json:"event_price"`

	// BlockDurationHours is copied onto every reservation at creation time.
	BlockDurationHours int `json:"block_duration_hours"`

	Active   bool   `json:"active"`
	ImageRef string `json:"image_ref,omitempty"`
}
