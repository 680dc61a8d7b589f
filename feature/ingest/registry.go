package ingest

import (
	"stock-migrator/feature/ingest/formats"
	"stock-migrator/feature/ingest/formats/lightrail"
	"stock-migrator/feature/ingest/formats/shopify"
)

// DefaultRegistry wires up every supported vendor format. Registration order
// matters: the classifier breaks score ties in favor of earlier vendors.
func DefaultRegistry() *formats.Registry {
	r := formats.NewRegistry()
	r.Register(shopify.Vendor, shopify.Header, shopify.Parsers())
	r.Register(lightrail.Vendor, lightrail.Header, lightrail.Parsers())
	return r
}
