// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes machine-readable run reports to disk.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/jhruska/idconvert/pkg/types"
)

// Write persists the run report at path, choosing the format from the
// extension: ".json" writes JSON, anything else YAML.
func Write(path string, r types.RunReport) error {
	if filepath.Ext(path) == ".json" {
		return WriteJSON(path, r)
	}
	return WriteYAML(path, r)
}

// WriteYAML marshals the run report to YAML at path.
func WriteYAML(path string, r types.RunReport) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteJSON marshals the run report to indented JSON at path.
func WriteJSON(path string, r types.RunReport) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
