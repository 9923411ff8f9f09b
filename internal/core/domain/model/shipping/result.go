package shipping

import "time"

// LabelStatus is the terminal state of one order's processing attempt.
type LabelStatus string

const (
	// LabelStatusRatesReady means rates were quoted and a selection recorded,
	// but no label was purchased (auto-purchase disabled or quote-only run).
	LabelStatusRatesReady LabelStatus = "rates_ready"

	// LabelStatusPurchased means the master transaction completed successfully.
	LabelStatusPurchased LabelStatus = "purchased"

	// LabelStatusFailed means the label purchase was attempted but the carrier
	// reported a non-success transaction status.
	LabelStatusFailed LabelStatus = "failed"

	// LabelStatusError means the pipeline itself failed before or during
	// processing: configuration errors, unusable input, or an upstream
	// service error.
	LabelStatusError LabelStatus = "error"
)

// ShippingResult is the per-order output of the pipeline, written back onto the
// order record. Every processing attempt, successful or not, produces a fully
// populated result; each run overwrites the previous result for that order.
type ShippingResult struct {
	ShipmentID         string      `json:"shipment_id,omitempty"`
	International      bool        `json:"international"`
	DestinationCountry string      `json:"destination_country,omitempty"`
	Rates              []Rate      `json:"rates,omitempty"`
	SelectedRate       *Rate       `json:"selected_rate,omitempty"`
	ParcelCount        int         `json:"parcel_count"`
	Status             LabelStatus `json:"status"`
	TransactionID      string      `json:"transaction_id,omitempty"`
	LabelURL           string      `json:"label_url,omitempty"`
	TrackingNumber     string      `json:"tracking_number,omitempty"`
	TrackingURL        string      `json:"tracking_url,omitempty"`
	AllLabels          []Label     `json:"all_labels,omitempty"`
	Message            string      `json:"message,omitempty"`
	ProcessedAt        time.Time   `json:"processed_at"`
}
