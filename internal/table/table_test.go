// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *Table
		errMsg  string
	}{
		{
			name:    "header and rows",
			content: "Name,ID Subjektu\nPerson 1,SUBJ-001\nPerson 2,SUBJ-002\n",
			want: &Table{
				Columns: []string{"Name", "ID Subjektu"},
				Rows:    [][]string{{"Person 1", "SUBJ-001"}, {"Person 2", "SUBJ-002"}},
			},
		},
		{
			name:    "header only",
			content: "ID\n",
			want:    &Table{Columns: []string{"ID"}, Rows: [][]string{}},
		},
		{
			name:    "ragged rows tolerated",
			content: "Name,ID Subjektu\nPerson 1\nPerson 2,SUBJ-002\n",
			want: &Table{
				Columns: []string{"Name", "ID Subjektu"},
				Rows:    [][]string{{"Person 1"}, {"Person 2", "SUBJ-002"}},
			},
		},
		{
			name:    "BOM stripped from first header cell",
			content: "\ufeffID,Name\nSUBJ-001,Person 1\n",
			want: &Table{
				Columns: []string{"ID", "Name"},
				Rows:    [][]string{{"SUBJ-001", "Person 1"}},
			},
		},
		{
			name:    "quoted fields",
			content: "Name,ID Subjektu\n\"Novak, Jan\",SUBJ-001\n",
			want: &Table{
				Columns: []string{"Name", "ID Subjektu"},
				Rows:    [][]string{{"Novak, Jan", "SUBJ-001"}},
			},
		},
		{
			name:    "empty file",
			content: "",
			errMsg:  "missing header row",
		},
		{
			name:    "malformed quoting",
			content: "Name,ID\n\"unterminated,SUBJ-001\n",
			errMsg:  "parsing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, t.TempDir(), "data.csv", tt.content)
			got, err := Read(path)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"ID", "Name"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"EXTRA-001", "Person 1"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"EXTRA-002", "Person 2"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "Name"}, got.Columns)
	ids, ok := got.Column("ID")
	require.True(t, ok)
	assert.Equal(t, []string{"EXTRA-001", "EXTRA-002"}, ids)
}

func TestReadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("ID\n1\n"), 0o644))

	_, err := Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestColumn(t *testing.T) {
	tbl := &Table{
		Columns: []string{"Name", "ID Subjektu"},
		Rows: [][]string{
			{"Person 1", "SUBJ-001"},
			{"Person 2", ""},
			{"Person 3", "   "},
			{"Person 4"},
			{"Person 5", "SUBJ-001"},
		},
	}

	values, ok := tbl.Column("ID Subjektu")
	require.True(t, ok)
	// Empty, whitespace-only, and missing cells drop out; duplicates stay.
	assert.Equal(t, []string{"SUBJ-001", "SUBJ-001"}, values)

	_, ok = tbl.Column("id subjektu")
	assert.False(t, ok, "column matching must be case-sensitive")

	_, ok = tbl.Column("missing")
	assert.False(t, ok)

	assert.True(t, tbl.HasColumn("Name"))
	assert.False(t, tbl.HasColumn("ID"))
}
