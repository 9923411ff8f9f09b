// Package organization defines per-tenant shipping configuration. Settings are
// supplied to the pipeline as an explicit parameter on every operation — the
// engine never reads ambient tenant state — and are never mutated by it.
package organization

import (
	"time"

	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/shipping"
)

// DefaultCheckHour is the scheduled-run hour used when an organization has not
// configured one.
const DefaultCheckHour = 15

// Schedule holds the automatic-run configuration an organization's staff edit
// through the settings UI. The engine only reads it.
type Schedule struct {
	Enabled     bool `json:"enabled"`
	CheckHour   int  `json:"check_hour"`
	CheckMinute int  `json:"check_minute"`
}

// ShippingSettings is everything the pipeline needs from an organization:
// carrier credentials, the warehouse return address, the carrier preference
// policy, and the automatic-run schedule.
type ShippingSettings struct {
	APIKey           string           `json:"api_key"`
	From             shipping.Address `json:"from"`
	PreferredCarrier string           `json:"preferred_carrier,omitempty"`
	AutoPurchase     bool             `json:"auto_purchase"`
	Schedule         Schedule         `json:"schedule"`
}

// Organization is one tenant of the warehouse application.
type Organization struct {
	ID       kernel.UUID
	Name     string
	Shipping ShippingSettings
}

// CheckHour returns the configured run hour, falling back to DefaultCheckHour
// when unset.
func (s ShippingSettings) CheckHour() int {
	if s.Schedule.CheckHour == 0 {
		return DefaultCheckHour
	}
	return s.Schedule.CheckHour
}

// Schedulable reports whether automatic runs are possible at all: shipping
// must be enabled and a carrier API key configured.
func (s ShippingSettings) Schedulable() bool {
	return s.Schedule.Enabled && s.APIKey != ""
}

// DueAt reports whether an automatic run is due at the given wall-clock time.
// The caller converts to the reference timezone before asking; repeated
// triggers within the same hour are not de-duplicated here.
func (s ShippingSettings) DueAt(now time.Time) bool {
	return s.Schedulable() && now.Hour() == s.CheckHour()
}
