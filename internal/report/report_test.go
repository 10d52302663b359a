// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/jhruska/idconvert/pkg/types"
)

func sampleReport() types.RunReport {
	r := types.RunReport{
		StartedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		InputDir:  "input",
		MergeDir:  "merge",
		MergeIDs:  2,
	}
	r.Add(types.FileReport{Name: "data.csv", Status: types.StatusConverted, IDs: 4})
	r.Add(types.FileReport{Name: "people.csv", Status: types.StatusSkippedNoColumn,
		Detail: `missing required column "ID Subjektu"`})
	return r
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, Write(path, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got types.RunReport
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "input", got.InputDir)
	assert.Equal(t, 1, got.Converted)
	assert.Equal(t, 1, got.Skipped)
	require.Len(t, got.Files, 2)
	assert.Equal(t, types.StatusConverted, got.Files[0].Status)
	assert.Equal(t, 4, got.Files[0].IDs)
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, Write(path, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got types.RunReport
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "merge", got.MergeDir)
	assert.Equal(t, 2, got.MergeIDs)
	require.Len(t, got.Files, 2)
	assert.Equal(t, "people.csv", got.Files[1].Name)
	assert.Contains(t, got.Files[1].Detail, "ID Subjektu")
}
