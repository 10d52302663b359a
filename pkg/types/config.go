// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default folder layout, relative to the working directory.
const (
	DefaultInputDir   = "input"
	DefaultMergeDir   = "merge"
	DefaultLedgerPath = "idconvert.db"
)

// FoldersConfig holds the two folders a conversion run operates on. Both
// are explicit parameters of the pipeline; nothing reads them from process
// globals.
type FoldersConfig struct {
	// InputDir is the folder scanned for CSV files to convert. Its absence
	// is the only fatal condition of a run.
	InputDir string `json:"input" yaml:"input"`

	// MergeDir is the folder of supplementary ID files unioned into every
	// converted output. May be missing; a missing folder contributes nothing.
	MergeDir string `json:"merge" yaml:"merge"`
}

// LedgerConfig holds settings for the run-history ledger.
type LedgerConfig struct {
	// Enabled controls whether finished runs are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the SQLite database file for the ledger.
	Path string `json:"path" yaml:"path"`
}

// PipelineConfig groups all configuration for the converter.
type PipelineConfig struct {
	Folders FoldersConfig `json:"folders" yaml:"folders"`
	Ledger  LedgerConfig  `json:"ledger" yaml:"ledger"`
}
