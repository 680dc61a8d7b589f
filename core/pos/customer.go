package pos

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a normalized customer account. Identity is always generated
// during migration; vendor exports never carry identifiers we preserve.
type Customer struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Contact          ContactInformation `json:"contact"`
	Notes            []Note             `json:"customer_notes"`
	Balance          decimal.Decimal    `json:"balance"`
	SpecialPricing   string             `json:"special_pricing"`
	AcceptsMarketing bool               `json:"accepts_marketing"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}
