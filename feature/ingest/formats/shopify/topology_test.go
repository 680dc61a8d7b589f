package shopify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stock-migrator/core/pos"
)

func TestParseStoresSynthesizesOnce(t *testing.T) {
	agg := pos.NewAggregate()

	count, err := ParseStores(nil, agg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, agg.Stores, 1)
	assert.Equal(t, "001", agg.Stores[0].Code)

	count, err = ParseStores(nil, agg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Len(t, agg.Stores, 1)
}

func TestParseKiosksBindsToDefaultStore(t *testing.T) {
	agg := pos.NewAggregate()

	_, err := ParseStores(nil, agg, zap.NewNop())
	require.NoError(t, err)

	count, err := ParseKiosks(nil, agg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.Len(t, agg.Kiosks, 1)
	assert.Equal(t, agg.Stores[0].ID, agg.Kiosks[0].StoreID)
	assert.True(t, agg.Kiosks[0].Disabled)
}
