package formats

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// OutputSuffix marks files produced by the pipeline itself. Such files are
// never re-ingested.
const OutputSuffix = ".os"

// IsSpreadsheet reports whether the file is an XLSX export rather than CSV.
func IsSpreadsheet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// ReadFile loads an export file as CSV bytes. XLSX exports are normalized by
// re-emitting the first worksheet as CSV so a single set of parsers serves
// both formats.
func ReadFile(path string) ([]byte, error) {
	if IsSpreadsheet(path) {
		return csvFromXLSX(path)
	}
	return os.ReadFile(path)
}

// HeaderLine returns the first line of an export file, used for format
// classification. An empty file yields an empty string and no error.
func HeaderLine(path string) (string, error) {
	if IsSpreadsheet(path) {
		return headerFromXLSX(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// Vendor headers run well past the default token size.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	return "", scanner.Err()
}

func csvFromXLSX(path string) ([]byte, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no worksheets", filepath.Base(path))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return []byte{}, nil
	}

	// excelize trims trailing empty cells; pad every row back out to the
	// header width so the CSV stays rectangular.
	width := len(rows[0])

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func headerFromXLSX(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil || len(rows) == 0 {
		return "", err
	}
	return strings.Join(rows[0], ","), nil
}
