package services

import (
	"regexp"
	"strings"

	"shiplabel/internal/core/domain/model/shipping"
)

var (
	// Two-letter state followed by a 5- or 9-digit ZIP, e.g. "IL 62704" or "CA 94105-1234".
	stateZipPattern = regexp.MustCompile(`^([A-Za-z]{2})\s+(\d{5}(?:-\d{4})?)$`)

	// Canadian postal code: letter-digit-letter, optional space, digit-letter-digit.
	canadianPostalPattern = regexp.MustCompile(`(?i)[A-Z]\d[A-Z] ?\d[A-Z]\d`)

	twoLetterPattern = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

// canadianProvinces is the fixed set of 13 Canadian province and territory codes.
var canadianProvinces = map[string]bool{
	"AB": true, "BC": true, "MB": true, "NB": true, "NL": true,
	"NS": true, "NT": true, "NU": true, "ON": true, "PE": true,
	"QC": true, "SK": true, "YT": true,
}

// AddressResolver normalizes address input into a canonical shipping.Address.
// Structured input passes through with only the country default applied;
// free-form input goes through a comma-segment heuristic parse.
//
// The parse never fails: fields it cannot determine stay empty, and the
// carrier-aggregation service is the final arbiter of address usability.
// A known precision limit: a 2-segment address with an inline state/ZIP
// ("123 Main St, Springfield IL 62704") is not disambiguated — the whole
// second segment becomes the city.
type AddressResolver struct{}

// NewAddressResolver creates an AddressResolver.
func NewAddressResolver() AddressResolver {
	return AddressResolver{}
}

// Resolve produces the canonical address for a destination. A structured
// address wins when present; otherwise the raw string is parsed and the
// separately supplied contact fields are attached.
func (r AddressResolver) Resolve(structured *shipping.Address, raw, name, email, phone string) shipping.Address {
	if structured != nil && !structured.IsZero() {
		addr := *structured
		if addr.Country == "" {
			addr.Country = shipping.DefaultCountry
		}
		if addr.Name == "" {
			addr.Name = name
		}
		if addr.Email == "" {
			addr.Email = email
		}
		if addr.Phone == "" {
			addr.Phone = phone
		}
		return addr
	}

	addr := r.Parse(raw)
	addr.Name = name
	addr.Email = email
	addr.Phone = phone
	return addr
}

// Parse applies the free-form heuristic:
//
//  1. Split on commas, trimming each segment; segment 0 is the street.
//  2. With three or more segments, segment 1 is the city and segment 2 is
//     tested against the state+ZIP pattern; on no match, segment 2 is the
//     state as written and a 4th segment, if present, supplies the ZIP.
//  3. With exactly two segments, segment 1 is the city only.
//  4. With four or more segments, a trailing two-letter token that differs
//     from the detected state overrides the country.
//  5. Independently, a Canadian postal code anywhere in the text sets the
//     country to CA, the ZIP to the matched code, and the first recognized
//     province code found in any segment becomes the state.
//
// The country defaults to US when never overridden.
func (r AddressResolver) Parse(raw string) shipping.Address {
	addr := shipping.Address{Country: shipping.DefaultCountry}

	segments := splitSegments(raw)
	if len(segments) == 0 {
		return addr
	}

	addr.Street1 = segments[0]

	switch {
	case len(segments) >= 3:
		addr.City = segments[1]
		if m := stateZipPattern.FindStringSubmatch(segments[2]); m != nil {
			addr.State = strings.ToUpper(m[1])
			addr.Zip = m[2]
		} else {
			addr.State = segments[2]
			if len(segments) >= 4 {
				addr.Zip = segments[3]
			}
		}
	case len(segments) == 2:
		addr.City = segments[1]
	}

	if len(segments) >= 4 {
		last := segments[len(segments)-1]
		if twoLetterPattern.MatchString(last) && !strings.EqualFold(last, addr.State) {
			addr.Country = strings.ToUpper(last)
		}
	}

	if code := canadianPostalPattern.FindString(raw); code != "" {
		addr.Country = "CA"
		addr.Zip = strings.ToUpper(code)
		if province := findProvince(segments); province != "" {
			addr.State = province
		}
	}

	return addr
}

func splitSegments(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	return segments
}

// findProvince scans all segments for the first token that is a Canadian
// province or territory code.
func findProvince(segments []string) string {
	for _, segment := range segments {
		for _, token := range strings.Fields(segment) {
			if upper := strings.ToUpper(token); canadianProvinces[upper] {
				return upper
			}
		}
	}
	return ""
}
