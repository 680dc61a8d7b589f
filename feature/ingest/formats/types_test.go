package formats_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"stock-migrator/feature/ingest/formats"
)

func TestRankOrdersByDependency(t *testing.T) {
	types := []formats.EntityType{
		formats.EntityTransaction,
		formats.EntityInvalid,
		formats.EntityProduct,
		formats.EntityStore,
		formats.EntityCustomer,
		formats.EntityKiosk,
	}

	sort.SliceStable(types, func(i, j int) bool {
		return types[i].Rank() < types[j].Rank()
	})

	assert.Equal(t, []formats.EntityType{
		formats.EntityStore,
		formats.EntityKiosk,
		formats.EntityProduct,
		formats.EntityCustomer,
		formats.EntityTransaction,
		formats.EntityInvalid,
	}, types)
}

func TestRankUnknownTypeSortsLast(t *testing.T) {
	assert.Greater(t, formats.EntityType("mystery").Rank(), formats.EntityInvalid.Rank())
}

func TestParseOrderExcludesInvalid(t *testing.T) {
	for _, entity := range formats.ParseOrder() {
		assert.NotEqual(t, formats.EntityInvalid, entity)
	}
	assert.Len(t, formats.ParseOrder(), 5)
}
