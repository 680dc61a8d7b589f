// Package pos defines the normalized point-of-sale entity model that vendor
// exports are migrated into.
//
// The model covers five entity families (Store, Kiosk, Product, Customer and
// Transaction) plus their substructures (contact information, product
// variants, orders, payments). Entities are pure data: they carry no parsing
// or I/O behavior.
//
// # Aggregate
//
// The Aggregate holds one growable collection per entity family and is the
// shared target of a single migration run. It is append-only: entities are
// created by their parser (or synthesized by a dependent parser), appended
// once, and never mutated or removed afterwards. The migration service owns
// the Aggregate exclusively; parsers receive it only for the duration of the
// file they are assigned.
//
// # Identity
//
// Store, kiosk, product and customer identities are generated (UUID v4);
// vendor exports do not carry identities we can trust across systems.
// Transaction identities are the one exception: they are vendor-supplied
// order identifiers and are preserved as-is.
package pos
