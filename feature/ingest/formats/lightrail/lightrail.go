// Package lightrail reserves a registry slot for Lightrail POS exports.
// Header templates and parsers are placeholders until real export samples
// are available; the sentinel headers keep the classifier from matching any
// file to this vendor.
package lightrail

import (
	"stock-migrator/core/pos"
	"stock-migrator/feature/ingest/formats"

	"go.uber.org/zap"
)

// Vendor is the registry name of this format family.
const Vendor = "lightrail"

const unmatchableHeader = "ZZZZ"

// Header returns the template header row for an entity type.
func Header(formats.EntityType) string {
	return unmatchableHeader
}

// Parsers returns the entity parser table for registry wiring. Every parser
// currently produces nothing.
func Parsers() map[formats.EntityType]formats.EntityParser {
	return map[formats.EntityType]formats.EntityParser{
		formats.EntityStore:       parseNothing,
		formats.EntityKiosk:       parseNothing,
		formats.EntityProduct:     parseNothing,
		formats.EntityCustomer:    parseNothing,
		formats.EntityTransaction: parseNothing,
	}
}

func parseNothing(_ []byte, _ *pos.Aggregate, _ *zap.Logger) (int, error) {
	return 0, nil
}
