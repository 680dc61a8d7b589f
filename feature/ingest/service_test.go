package ingest

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stock-migrator/core/pos"
	"stock-migrator/feature/ingest/formats"
	"stock-migrator/feature/ingest/formats/shopify"
)

// buildExport renders rows against a vendor header template so test files
// classify with a score of zero.
func buildExport(t *testing.T, header string, rows []map[string]string) string {
	t.Helper()

	columns := strings.Split(header, ",")
	var b strings.Builder
	w := csv.NewWriter(&b)
	require.NoError(t, w.Write(columns))

	for _, row := range rows {
		record := make([]string, len(columns))
		for i, column := range columns {
			record[i] = row[column]
		}
		require.NoError(t, w.Write(record))
	}
	w.Flush()
	require.NoError(t, w.Error())

	return b.String()
}

func writeExport(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func seedExports(t *testing.T, dir string) {
	t.Helper()

	writeExport(t, dir, "products.csv", buildExport(t, shopify.Header(formats.EntityProduct), []map[string]string{
		{"Handle": "tee", "Title": "Basic Tee", "Vendor": "Acme", "Option1 Name": "Size", "Option1 Value": "S", "Variant Price": "10.00"},
		{"Handle": "tee", "Option1 Value": "M", "Variant Price": "12.00"},
	}))

	writeExport(t, dir, "customers.csv", buildExport(t, shopify.Header(formats.EntityCustomer), []map[string]string{
		{"First Name": "Jan", "Last Name": "Kowalski", "Email": "jan@example.com", "Accepts Email Marketing": "yes"},
	}))

	writeExport(t, dir, "orders.csv", buildExport(t, shopify.Header(formats.EntityTransaction), []map[string]string{
		{"Name": "#1001", "Billing Name": "Jan Kowalski", "Lineitem name": "Basic Tee", "Lineitem quantity": "2",
			"Lineitem price": "10.00", "Total": "20.00", "Currency": "NZD", "Payment Method": "card", "Id": "9001"},
	}))
}

func TestRunParsesDirectoryInDependencyOrder(t *testing.T) {
	dir := t.TempDir()
	seedExports(t, dir)

	svc := NewService(zap.NewNop(), nil, "", "", nil)
	agg, report, err := svc.Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Counts["products"])
	assert.Equal(t, 1, report.Counts["customers"])
	assert.Equal(t, 1, report.Counts["transactions"])

	require.Len(t, agg.Products, 1)
	assert.Len(t, agg.Products[0].Variants, 2)

	// Customer files parse before order files, so the order links to the
	// imported customer instead of synthesizing one.
	require.Len(t, agg.Customers, 1)
	require.Len(t, agg.Transactions, 1)
	assert.Equal(t, agg.Customers[0].ID, agg.Transactions[0].CustomerID)
	assert.Equal(t, "9001", agg.Transactions[0].ID)
}

func TestRunSkipsUnrecognizedAndOutputFiles(t *testing.T) {
	dir := t.TempDir()
	seedExports(t, dir)
	writeExport(t, dir, "previous.os", `{"stores":[]}`)
	writeExport(t, dir, "empty.csv", "")

	svc := NewService(zap.NewNop(), nil, "", "", nil)
	_, report, err := svc.Run(context.Background(), dir)
	require.NoError(t, err)

	skipped := map[string]string{}
	for _, f := range report.Files {
		if f.Skipped {
			skipped[filepath.Base(f.Path)] = f.Reason
		}
	}

	assert.Equal(t, "pipeline output", skipped["previous.os"])
	assert.Equal(t, "unrecognized header", skipped["empty.csv"])
	assert.Len(t, skipped, 2)
}

func TestRunIsRepeatable(t *testing.T) {
	dir := t.TempDir()
	seedExports(t, dir)

	svc := NewService(zap.NewNop(), nil, "", "", nil)

	first, _, err := svc.Run(context.Background(), dir)
	require.NoError(t, err)

	output := filepath.Join(dir, "output.os")
	require.NoError(t, svc.WriteAggregate(first, output))

	// The previous output sits inside the input directory and must not be
	// re-ingested.
	second, _, err := svc.Run(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, first.Counts(), second.Counts())
}

func TestWriteAggregateRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "output.os")

	agg := pos.NewAggregate()
	agg.Stores = append(agg.Stores, pos.Store{ID: "store-1", Name: "Main"})

	svc := NewService(zap.NewNop(), nil, "", "", nil)
	require.NoError(t, svc.WriteAggregate(agg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded pos.Aggregate
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Stores, 1)
	assert.Equal(t, "Main", decoded.Stores[0].Name)
	assert.NotNil(t, decoded.Products)
}
