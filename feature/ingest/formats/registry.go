package formats

import (
	"stock-migrator/core/pos"

	"go.uber.org/zap"
)

// EntityParser parses one file's contents (CSV bytes) into entities of one
// type, appends them to the aggregate, and returns how many were appended.
// Parsers may also read the aggregate and append to other collections when
// resolving cross-entity references (e.g. synthesizing a missing customer).
type EntityParser func(data []byte, agg *pos.Aggregate, log *zap.Logger) (int, error)

// HeaderFunc yields a vendor's canonical header template for an entity type.
// Templates are compared against raw file headers by edit distance, so they
// must be the exact literal column list of the vendor's export.
type HeaderFunc func(EntityType) string

// Registry is the closed lookup table of supported vendor formats,
// constructed once at startup. Vendors are enumerated in registration order,
// which the classifier's tie-breaking depends on.
type Registry struct {
	vendors []string
	parsers map[string]map[EntityType]EntityParser
	headers map[string]HeaderFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		parsers: make(map[string]map[EntityType]EntityParser),
		headers: make(map[string]HeaderFunc),
	}
}

// Register adds a vendor with its header templates and per-entity parsers.
// Registering the same vendor twice replaces its tables but keeps its
// original position in the enumeration order.
func (r *Registry) Register(vendor string, headers HeaderFunc, parsers map[EntityType]EntityParser) {
	if _, exists := r.parsers[vendor]; !exists {
		r.vendors = append(r.vendors, vendor)
	}
	r.parsers[vendor] = parsers
	r.headers[vendor] = headers
}

// Vendors returns the registered vendor names in registration order.
func (r *Registry) Vendors() []string {
	return r.vendors
}

// Header returns the vendor's template for the given entity type, or "" for
// an unknown vendor.
func (r *Registry) Header(vendor string, t EntityType) string {
	fn, ok := r.headers[vendor]
	if !ok {
		return ""
	}
	return fn(t)
}

// Parser looks up the parsing function for a (vendor, entity type) pair. A
// miss is a fatal configuration failure: the classifier only ever emits
// registered pairs, so a miss means the registry and classifier disagree.
func (r *Registry) Parser(vendor string, t EntityType) (EntityParser, error) {
	byType, ok := r.parsers[vendor]
	if !ok {
		return nil, ConfigFailure("vendor %q is not registered", vendor)
	}
	p, ok := byType[t]
	if !ok {
		return nil, ConfigFailure("vendor %q has no parser for entity type %q", vendor, t)
	}
	return p, nil
}
