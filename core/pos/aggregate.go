package pos

import "strings"

// Aggregate is the shared target of one migration run: one append-only
// collection per entity family. JSON field order matches the fixed output
// contract (stores, kiosks, products, customers, transactions).
type Aggregate struct {
	Stores       []Store       `json:"stores"`
	Kiosks       []Kiosk       `json:"kiosks"`
	Products     []Product     `json:"products"`
	Customers    []Customer    `json:"customers"`
	Transactions []Transaction `json:"transactions"`
}

// NewAggregate returns an empty aggregate with non-nil collections so the
// serialized output always carries five arrays.
func NewAggregate() *Aggregate {
	return &Aggregate{
		Stores:       []Store{},
		Kiosks:       []Kiosk{},
		Products:     []Product{},
		Customers:    []Customer{},
		Transactions: []Transaction{},
	}
}

// DefaultStore returns the first store of the run, if any. Product stock and
// kiosk synthesis anchor to it.
func (a *Aggregate) DefaultStore() (*Store, bool) {
	if len(a.Stores) == 0 {
		return nil, false
	}
	return &a.Stores[0], true
}

// DefaultKiosk returns the first kiosk of the run, if any.
func (a *Aggregate) DefaultKiosk() (*Kiosk, bool) {
	if len(a.Kiosks) == 0 {
		return nil, false
	}
	return &a.Kiosks[0], true
}

// CustomerByReference resolves an order reference to an existing customer by
// substring containment in the display name, first match in insertion order.
//
// This is a heuristic carried over from the vendor formats, which supply no
// foreign key: it can false-positive when one customer's name contains
// another's, and "first match wins" is deliberate policy rather than a
// correctness guarantee.
func (a *Aggregate) CustomerByReference(ref string) (*Customer, bool) {
	if ref == "" {
		return nil, false
	}
	for i := range a.Customers {
		if strings.Contains(a.Customers[i].Name, ref) {
			return &a.Customers[i], true
		}
	}
	return nil, false
}

// Counts reports collection sizes keyed by collection name.
func (a *Aggregate) Counts() map[string]int {
	return map[string]int{
		"stores":       len(a.Stores),
		"kiosks":       len(a.Kiosks),
		"products":     len(a.Products),
		"customers":    len(a.Customers),
		"transactions": len(a.Transactions),
	}
}
