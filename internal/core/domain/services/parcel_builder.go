package services

import (
	"math"
	"sort"
	"strconv"

	"shiplabel/internal/core/domain/model/order"
	"shiplabel/internal/core/domain/model/shipping"
)

// ParcelBuilder derives the parcel list for an order from its packing data.
// Triwall entries take precedence, then box-level detail; an order with no
// packing data at all ships as a single default box.
type ParcelBuilder struct{}

// NewParcelBuilder creates a ParcelBuilder.
func NewParcelBuilder() ParcelBuilder {
	return ParcelBuilder{}
}

// Build produces the ordered parcel list for an order and, when insuranceTotal
// is positive, attaches insurance to every parcel. The total is split evenly
// with each parcel's share rounded up to the nearest cent, so the insured sum
// always covers at least the requested total. The rounding can over-insure by
// up to parcelCount-1 cents, which is accepted.
func (b ParcelBuilder) Build(ord *order.Order, insuranceTotal float64) []shipping.Parcel {
	parcels := b.buildParcels(ord)

	if insuranceTotal > 0 && len(parcels) > 0 {
		perParcel := math.Ceil(insuranceTotal/float64(len(parcels))*100) / 100
		for i := range parcels {
			parcels[i].Insurance = &shipping.Insurance{
				Amount:   perParcel,
				Currency: "USD",
			}
		}
	}

	return parcels
}

func (b ParcelBuilder) buildParcels(ord *order.Order) []shipping.Parcel {
	switch {
	case len(ord.Triwalls) > 0:
		parcels := make([]shipping.Parcel, 0, len(ord.Triwalls))
		for _, tw := range ord.Triwalls {
			parcels = append(parcels, shipping.Parcel{
				Length: dimensionOrDefault(tw.Length, shipping.TriwallDefaultLength),
				Width:  dimensionOrDefault(tw.Width, shipping.TriwallDefaultWidth),
				Height: dimensionOrDefault(tw.Height, shipping.TriwallDefaultHeight),
				Weight: dimensionOrDefault(tw.Weight, shipping.TriwallDefaultWeight),
			})
		}
		return parcels

	case len(ord.BoxDetails) > 0:
		// Map iteration order is random; sort keys so the parcel list is stable.
		keys := make([]string, 0, len(ord.BoxDetails))
		for k := range ord.BoxDetails {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parcels := make([]shipping.Parcel, 0, len(keys))
		for _, k := range keys {
			box := ord.BoxDetails[k]
			parcels = append(parcels, shipping.Parcel{
				Length: valueOrDefault(box.Length, shipping.BoxDefaultLength),
				Width:  valueOrDefault(box.Width, shipping.BoxDefaultWidth),
				Height: valueOrDefault(box.Height, shipping.BoxDefaultHeight),
				Weight: valueOrDefault(box.Weight, shipping.BoxDefaultWeight),
			})
		}
		return parcels

	default:
		return []shipping.Parcel{{
			Length: shipping.BoxDefaultLength,
			Width:  shipping.BoxDefaultWidth,
			Height: shipping.BoxDefaultHeight,
			Weight: shipping.BoxDefaultWeight,
		}}
	}
}

// dimensionOrDefault parses a free-form dimension string, falling back to the
// default when the value is missing or non-numeric.
func dimensionOrDefault(raw string, def float64) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func valueOrDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
