package shipping

// Default parcel dimensions, in inches and pounds.
// Triwalls are large bulk containers; boxes fall back to a small standard carton.
const (
	TriwallDefaultLength = 48.0
	TriwallDefaultWidth  = 40.0
	TriwallDefaultHeight = 36.0
	TriwallDefaultWeight = 50.0

	BoxDefaultLength = 12.0
	BoxDefaultWidth  = 12.0
	BoxDefaultHeight = 12.0
	BoxDefaultWeight = 5.0
)

// Insurance describes optional declared-value coverage for a single parcel.
type Insurance struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Provider string  `json:"provider,omitempty"`
}

// Parcel is one physical package within a shipment: dimensions in inches,
// weight in pounds, and optional insurance. An order maps to one or more
// parcels depending on its packing data.
type Parcel struct {
	Length    float64    `json:"length"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	Weight    float64    `json:"weight"`
	Insurance *Insurance `json:"insurance,omitempty"`
}
