// Package shopify parses Shopify admin exports (products, customers, orders)
// into the normalized entity model.
//
// Shopify exports carry no store topology, so the store and kiosk parsers
// synthesize a single default location instead of reading rows. Product
// exports spread one product over multiple rows (one per variant); the
// product parser groups them back together.
package shopify
