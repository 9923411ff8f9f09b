package shipping

// ThirdPartyBilling routes carrier charges to another account, typically the
// customer's own carrier account for freight-collect arrangements.
type ThirdPartyBilling struct {
	Account string `json:"account"`
	Country string `json:"country"`
}

// Shipment is the rate request submitted to the carrier-aggregation service:
// both endpoints, the packed parcels, and the customs-declaration reference for
// international destinations. A shipment is created once per processing attempt
// and never retried with mutated contents.
type Shipment struct {
	From                 Address            `json:"address_from"`
	To                   Address            `json:"address_to"`
	Parcels              []Parcel           `json:"parcels"`
	CustomsDeclarationID string             `json:"customs_declaration,omitempty"`
	BillTo               *ThirdPartyBilling `json:"bill_to,omitempty"`
}

// Rate is one priced shipping offer for a shipment: a single carrier and
// service level with its amount and transit estimate. Rates are never mutated
// after receipt, only filtered and sorted during selection.
type Rate struct {
	ID            string  `json:"id"`
	Carrier       string  `json:"carrier"`
	Service       string  `json:"service"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	TransitDays   int     `json:"transit_days,omitempty"`
	DurationTerms string  `json:"duration_terms,omitempty"`
}
