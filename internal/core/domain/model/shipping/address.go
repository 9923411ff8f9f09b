package shipping

// DefaultCountry is assumed whenever a destination country cannot be detected
// from the raw address input.
const DefaultCountry = "US"

// Address is a canonical postal address as understood by the carrier-aggregation
// service. Produced by the address resolver from structured or free-form input
// and immutable once produced. Absent fields are empty strings; validation of
// usability is deferred to the carrier, which reports unusable addresses as a
// service error.
type Address struct {
	Name    string `json:"name,omitempty"`
	Company string `json:"company,omitempty"`
	Street1 string `json:"street1"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// IsZero reports whether no address line was ever supplied.
// An address with only contact fields set still counts as zero.
func (a Address) IsZero() bool {
	return a.Street1 == "" && a.City == "" && a.Zip == ""
}
