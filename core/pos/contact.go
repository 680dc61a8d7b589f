package pos

import (
	"strings"
	"time"

	"github.com/ttacon/libphonenumber"
)

// DefaultPhoneRegion is the region hint used when a vendor export carries
// phone numbers without a country prefix.
const DefaultPhoneRegion = "NZ"

// ContactInformation groups the contact details attached to stores, customers
// and order locations.
type ContactInformation struct {
	Name     string       `json:"name"`
	Mobile   MobileNumber `json:"mobile"`
	Email    Email        `json:"email"`
	Landline string       `json:"landline"`
	Address  Address      `json:"address"`
}

// Address is a postal address. Lat/Lon are zero unless a vendor supplies them.
type Address struct {
	Street  string  `json:"street"`
	Street2 string  `json:"street2"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	POCode  string  `json:"po_code"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// MobileNumber is a phone number normalized to E.164 where possible.
type MobileNumber struct {
	RegionCode string `json:"region_code"`
	Number     string `json:"number"`
}

// NewMobile parses a raw vendor phone string. Unparseable input is kept
// verbatim so no contact data is lost during migration.
func NewMobile(raw string) MobileNumber {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return MobileNumber{}
	}

	num, err := libphonenumber.Parse(raw, DefaultPhoneRegion)
	if err != nil {
		return MobileNumber{Number: raw}
	}

	return MobileNumber{
		RegionCode: libphonenumber.GetRegionCodeForNumber(num),
		Number:     libphonenumber.Format(num, libphonenumber.E164),
	}
}

// Email is an address split into its root and domain parts.
type Email struct {
	Root   string `json:"root"`
	Domain string `json:"domain"`
	Full   string `json:"full"`
}

// NewEmail splits a raw address on its first '@'. Malformed addresses keep
// the whole input in Full.
func NewEmail(raw string) Email {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Email{}
	}

	root, domain, ok := strings.Cut(raw, "@")
	if !ok {
		return Email{Full: raw}
	}

	return Email{Root: root, Domain: domain, Full: raw}
}

// Note is a free-text annotation stamped with its author and creation time.
type Note struct {
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}
