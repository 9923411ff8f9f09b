package services

import (
	"strings"

	"shiplabel/internal/core/domain/model/shipping"
)

// RateSelector applies the organization's carrier preference policy to a set
// of candidate rates. The policy is two-tiered: the cheapest rate among
// carriers matching the preferred-carrier substring, falling back to the
// cheapest rate overall when no carrier matches. The substring comparison is
// case-insensitive and deliberately not an exact match, so a preference of
// "ups" matches both "UPS" and "UPS Ground Saver".
type RateSelector struct{}

// NewRateSelector creates a RateSelector.
func NewRateSelector() RateSelector {
	return RateSelector{}
}

// Select returns the chosen rate, or nil when the rate list is empty.
// Ties on amount are broken by original list order, so the selection is
// stable across identical inputs.
func (s RateSelector) Select(rates []shipping.Rate, preferredCarrier string) *shipping.Rate {
	if len(rates) == 0 {
		return nil
	}

	candidates := rates
	if preferredCarrier != "" {
		if preferred := filterByCarrier(rates, preferredCarrier); len(preferred) > 0 {
			candidates = preferred
		}
	}

	best := candidates[0]
	for _, r := range candidates[1:] {
		if r.Amount < best.Amount {
			best = r
		}
	}
	return &best
}

func filterByCarrier(rates []shipping.Rate, substr string) []shipping.Rate {
	needle := strings.ToLower(substr)
	var matched []shipping.Rate
	for _, r := range rates {
		if strings.Contains(strings.ToLower(r.Carrier), needle) {
			matched = append(matched, r)
		}
	}
	return matched
}
