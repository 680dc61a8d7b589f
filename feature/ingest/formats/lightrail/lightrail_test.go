package lightrail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stock-migrator/core/pos"
	"stock-migrator/feature/ingest/formats"
)

func TestParsersProduceNothing(t *testing.T) {
	agg := pos.NewAggregate()

	for entity, parse := range Parsers() {
		count, err := parse([]byte("a,b,c\n1,2,3\n"), agg, zap.NewNop())
		require.NoError(t, err, entity)
		assert.Zero(t, count, entity)
	}

	assert.Empty(t, agg.Products)
	assert.Empty(t, agg.Customers)
}

func TestHeadersAreUnmatchable(t *testing.T) {
	for _, entity := range formats.ParseOrder() {
		assert.Equal(t, "ZZZZ", Header(entity))
	}
}
