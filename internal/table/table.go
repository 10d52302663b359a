// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table reads tabular files with a named-column header row.
// CSV files are parsed with the standard library reader; XLSX workbooks
// are read through their first worksheet.
package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table holds the contents of one tabular file: the header row and the
// data rows beneath it.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Read loads a tabular file, dispatching on extension. The first row is
// always treated as the header.
func Read(path string) (*Table, error) {
	switch filepath.Ext(path) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

func readCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Ragged rows are tolerated; short rows read as missing trailing cells.
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return &Table{Columns: header, Rows: records[1:]}, nil
}

func readXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}
	return &Table{Columns: rows[0], Rows: rows[1:]}, nil
}

// HasColumn reports whether the header contains a column with exactly this
// name. Matching is case-sensitive.
func (t *Table) HasColumn(name string) bool {
	return t.columnIndex(name) >= 0
}

// Column returns the non-empty values of the named column, in row order.
// Cells that are absent, empty, or whitespace-only are dropped; surviving
// values are returned verbatim. The second return is false when the header
// has no such column.
func (t *Table) Column(name string) ([]string, bool) {
	idx := t.columnIndex(name)
	if idx < 0 {
		return nil, false
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx >= len(row) {
			continue
		}
		if strings.TrimSpace(row[idx]) == "" {
			continue
		}
		values = append(values, row[idx])
	}
	return values, true
}

func (t *Table) columnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
