// Package order defines the packed sales order consumed by the shipping
// pipeline. The engine does not own these records: the warehouse application
// creates and manages them, and this engine reads them as opaque input and
// writes a shipping result back through the order store. Fields are therefore
// plain and permissive — missing packing data, absent weights, and free-form
// address strings are all expected, with defaults applied downstream.
package order

import (
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/shipping"
)

// StatusPacked marks orders that finished packing and are eligible for
// shipping. The eligibility predicate itself is owned by the order store.
const StatusPacked = "packed"

// LineItem is one sellable line of a packed order. Weight and price are
// optional in warehouse data; the customs builder substitutes defaults.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	WeightLb    float64 `json:"weight_lb,omitempty"`
	UnitPrice   float64 `json:"unit_price,omitempty"`
	TariffCode  string  `json:"tariff_code,omitempty"`
}

// Triwall is one bulk container entry from the packing screen. Dimensions and
// weight arrive as free-form strings and may be blank or non-numeric; the
// parcel builder falls back to triwall defaults in that case.
type Triwall struct {
	Length string `json:"length,omitempty"`
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
	Weight string `json:"weight,omitempty"`
}

// BoxDetail is one carton entry from box-level packing data.
// Zero dimensions fall back to the standard box defaults.
type BoxDetail struct {
	Length float64 `json:"length,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Weight float64 `json:"weight,omitempty"`
}

// CustomsInfo is the optional per-order customs override block. Any non-empty
// field overrides the corresponding declaration default; DestinationCountry
// additionally overrides the resolved destination's country.
type CustomsInfo struct {
	ContentsType        string `json:"contents_type,omitempty"`
	ContentsExplanation string `json:"contents_explanation,omitempty"`
	NonDeliveryOption   string `json:"non_delivery_option,omitempty"`
	Incoterm            string `json:"incoterm,omitempty"`
	Signer              string `json:"signer,omitempty"`
	ExportControlCode   string `json:"eel_pfc,omitempty"`
	DestinationCountry  string `json:"destination_country,omitempty"`
}

// Order is a packed sales order as stored by the warehouse application.
// The destination may be supplied as a structured ShipTo address, a free-form
// ShippingAddress string, or fall back to the customer's general address.
type Order struct {
	ID             kernel.UUID `json:"-"`
	OrganizationID kernel.UUID `json:"-"`
	Number         string      `json:"number"`
	Status         string      `json:"status"`
	Description    string      `json:"description,omitempty"`

	ShipTo          *shipping.Address `json:"ship_to,omitempty"`
	ShippingAddress string            `json:"shipping_address,omitempty"`
	CustomerAddress string            `json:"customer_address,omitempty"`
	ShipToName      string            `json:"ship_to_name,omitempty"`
	ShipToEmail     string            `json:"ship_to_email,omitempty"`
	ShipToPhone     string            `json:"ship_to_phone,omitempty"`

	Items      []LineItem           `json:"items,omitempty"`
	Triwalls   []Triwall            `json:"triwalls,omitempty"`
	BoxDetails map[string]BoxDetail `json:"box_details,omitempty"`

	InsuranceAmount float64 `json:"insurance_amount,omitempty"`
	Subtotal        float64 `json:"subtotal,omitempty"`
	Total           float64 `json:"total,omitempty"`

	Customs *CustomsInfo `json:"customs,omitempty"`

	// Shipping holds the result of the most recent processing attempt.
	// Overwritten on every run.
	Shipping *shipping.ShippingResult `json:"shipping,omitempty"`
}

// HasDestination reports whether any destination address source exists on the
// order. Orders without one fail processing with an input error.
func (o *Order) HasDestination() bool {
	return (o.ShipTo != nil && !o.ShipTo.IsZero()) || o.ShippingAddress != "" || o.CustomerAddress != ""
}

// InsurableAmount returns the value to insure: the explicit insurance field
// when set, else the subtotal, else the total, else zero.
func (o *Order) InsurableAmount() float64 {
	switch {
	case o.InsuranceAmount > 0:
		return o.InsuranceAmount
	case o.Subtotal > 0:
		return o.Subtotal
	case o.Total > 0:
		return o.Total
	default:
		return 0
	}
}
