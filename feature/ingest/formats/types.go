package formats

// EntityType identifies which entity family a vendor export file contains.
type EntityType string

const (
	EntityStore       EntityType = "store"
	EntityKiosk       EntityType = "kiosk"
	EntityProduct     EntityType = "product"
	EntityCustomer    EntityType = "customer"
	EntityTransaction EntityType = "transaction"

	// EntityInvalid marks files that must not be ingested, such as the
	// pipeline's own previous output.
	EntityInvalid EntityType = "invalid"
)

// entityRank defines the dependency order of the pipeline. A store must be
// present before products can anchor stock to it, and customers must be
// present before transactions can link to them, hence the total order
// Store → Kiosk → Product → Customer → Transaction. Invalid sorts last and
// is never parsed.
var entityRank = map[EntityType]int{
	EntityStore:       0,
	EntityKiosk:       1,
	EntityProduct:     2,
	EntityCustomer:    3,
	EntityTransaction: 4,
	EntityInvalid:     5,
}

// Rank returns the entity's position in the dependency order. Unknown types
// sort after everything else.
func (t EntityType) Rank() int {
	if r, ok := entityRank[t]; ok {
		return r
	}
	return len(entityRank)
}

// ParseOrder enumerates the parseable entity types in dependency order. The
// classifier also scores templates in this order, which makes tie-breaking
// deterministic.
func ParseOrder() []EntityType {
	return []EntityType{
		EntityStore,
		EntityKiosk,
		EntityProduct,
		EntityCustomer,
		EntityTransaction,
	}
}
