package shipping

import "strings"

// TransactionStatusSuccess is the carrier-side status of a completed label purchase.
// Any other status is treated as a failure.
const TransactionStatusSuccess = "SUCCESS"

// UnknownErrorMessage is reported when a failed transaction carries no
// provider messages at all.
const UnknownErrorMessage = "Unknown error"

// Label is the printable artifact of one purchased parcel: the label file and
// its tracking identifiers, tied back to the carrier transaction that produced it.
type Label struct {
	TransactionID  string `json:"transaction_id"`
	LabelURL       string `json:"label_url"`
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url"`
}

// Transaction is the carrier-side record of a label purchase. A purchase yields
// one master transaction; for multi-parcel shipments the aggregation service
// generates sibling transactions sharing the same rate id, which are discovered
// by polling and attached to the master as AllLabels.
type Transaction struct {
	ID             string   `json:"id"`
	Status         string   `json:"status"`
	RateID         string   `json:"rate_id"`
	LabelURL       string   `json:"label_url"`
	TrackingNumber string   `json:"tracking_number"`
	TrackingURL    string   `json:"tracking_url"`
	Messages       []string `json:"messages,omitempty"`
	AllLabels      []Label  `json:"all_labels,omitempty"`
}

// Succeeded reports whether the transaction completed with a purchased label.
func (t Transaction) Succeeded() bool {
	return t.Status == TransactionStatusSuccess
}

// Label returns the printable-label view of this transaction.
func (t Transaction) Label() Label {
	return Label{
		TransactionID:  t.ID,
		LabelURL:       t.LabelURL,
		TrackingNumber: t.TrackingNumber,
		TrackingURL:    t.TrackingURL,
	}
}

// FailureReason concatenates all provider message texts into one line,
// falling back to UnknownErrorMessage when the provider returned none.
func (t Transaction) FailureReason() string {
	if len(t.Messages) == 0 {
		return UnknownErrorMessage
	}
	return strings.Join(t.Messages, "; ")
}
