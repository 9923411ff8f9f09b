package shipping

// Customs declaration defaults applied when the order carries no overriding
// customs info block.
const (
	ContentsTypeMerchandise  = "MERCHANDISE"
	NonDeliveryOptionReturn  = "RETURN"
	IncotermDDU              = "DDU"
	CustomsOriginCountry     = "US"
	CustomsDefaultItemWeight = 5.0
	CustomsDefaultItemValue  = 10.0
)

// CustomsItem describes one line of an export declaration.
// NetWeight is whole pounds, never below one; Value is the per-line declared
// value in Currency.
type CustomsItem struct {
	Description   string  `json:"description"`
	Quantity      int     `json:"quantity"`
	NetWeight     float64 `json:"net_weight"`
	Value         float64 `json:"value"`
	Currency      string  `json:"currency"`
	OriginCountry string  `json:"origin_country"`
	TariffCode    string  `json:"tariff_code,omitempty"`
}

// CustomsDeclaration is the export-compliance document required for
// international parcels. Built once per international shipment, immutable,
// and referenced by carrier-side id in the shipment request. The builder's
// defaults guarantee all required fields are non-empty, so a declaration is
// always well-formed.
type CustomsDeclaration struct {
	ContentsType        string        `json:"contents_type"`
	ContentsExplanation string        `json:"contents_explanation,omitempty"`
	NonDeliveryOption   string        `json:"non_delivery_option"`
	Certify             bool          `json:"certify"`
	CertifySigner       string        `json:"certify_signer"`
	Incoterm            string        `json:"incoterm"`
	Items               []CustomsItem `json:"items"`
	ExportControlCode   string        `json:"eel_pfc,omitempty"`
}
