package utils

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// timeLayouts are tried in order when parsing vendor timestamps. Exports mix
// ISO-style timestamps with zone offsets, bare dates, and US slash dates.
var timeLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"1/2/2006 15:04",
	"1/2/2006",
	"01/02/2006",
}

// ToDecimal parses a raw cell as a decimal number. Empty or unparseable cells
// return the fallback; use ParseDecimal when a failure must be observed.
func ToDecimal(raw string, fallback decimal.Decimal) decimal.Decimal {
	d, err := ParseDecimal(raw)
	if err != nil {
		return fallback
	}
	return d
}

// ParseDecimal parses a raw cell as a decimal number, stripping currency
// grouping commas first.
func ParseDecimal(raw string) (decimal.Decimal, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	return decimal.NewFromString(raw)
}

// ToBool interprets the truthy spellings that appear across vendor exports.
func ToBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

// ToTime parses a raw cell against the known vendor timestamp layouts and
// falls back to the given time when nothing matches. Migration prefers an
// approximate timestamp over losing the record.
func ToTime(raw string, fallback time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return fallback
}
