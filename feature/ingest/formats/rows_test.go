package formats_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"stock-migrator/feature/ingest/formats"
)

func writeXLSX(t *testing.T, dir string, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(dir, "export.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadFilePassesCSVThrough(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.csv")
	content := "Handle,Title\ntee,Basic Tee\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	data, err := formats.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestReadFileNormalizesXLSXToCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeXLSX(t, dir, [][]string{
		{"Handle", "Title", "Variant Price"},
		{"tee", "Basic Tee", "10.00"},
		{"tee", "", "12.00"},
	})

	data, err := formats.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Handle,Title,Variant Price\ntee,Basic Tee,10.00\ntee,,12.00\n", string(data))
}

func TestHeaderLineFromCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(path, []byte("Handle,Title\ntee,Basic Tee\n"), 0o644))

	header, err := formats.HeaderLine(path)
	require.NoError(t, err)
	assert.Equal(t, "Handle,Title", header)
}

func TestHeaderLineFromXLSX(t *testing.T) {
	dir := t.TempDir()
	path := writeXLSX(t, dir, [][]string{
		{"First Name", "Last Name", "Email"},
		{"Jan", "Kowalski", "jan@example.com"},
	})

	header, err := formats.HeaderLine(path)
	require.NoError(t, err)
	assert.Equal(t, "First Name,Last Name,Email", header)
}

func TestHeaderLineEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	header, err := formats.HeaderLine(path)
	require.NoError(t, err)
	assert.Empty(t, header)
}

func TestIsSpreadsheet(t *testing.T) {
	assert.True(t, formats.IsSpreadsheet("exports/products.XLSX"))
	assert.False(t, formats.IsSpreadsheet("exports/products.csv"))
}
