// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// FileStatus is the final outcome of one candidate input file.
type FileStatus string

const (
	// StatusEligible marks a file the selector passed through for
	// conversion. It never appears in a finished report; the converter
	// resolves it to StatusConverted or StatusFailed.
	StatusEligible FileStatus = "eligible"

	StatusConverted FileStatus = "converted"
	StatusFailed    FileStatus = "failed"

	// StatusSkippedConverted: the filename already carries the
	// "_converted" suffix.
	StatusSkippedConverted FileStatus = "skipped-converted-name"

	// StatusSkippedExists: the computed output file is already on disk.
	StatusSkippedExists FileStatus = "skipped-output-exists"

	// StatusSkippedIDOnly: the file has an "ID" column but no
	// "ID Subjektu" column, so it looks like a previous run's output.
	StatusSkippedIDOnly FileStatus = "skipped-id-only"

	// StatusSkippedNoColumn: the file has neither ID column.
	StatusSkippedNoColumn FileStatus = "skipped-no-column"
)

// Skipped reports whether the status is one of the skip outcomes.
func (s FileStatus) Skipped() bool {
	switch s {
	case StatusSkippedConverted, StatusSkippedExists, StatusSkippedIDOnly, StatusSkippedNoColumn:
		return true
	}
	return false
}

// FileReport is the recorded outcome of one input file.
type FileReport struct {
	// Name is the file's base name within the input folder.
	Name string `json:"name" yaml:"name"`

	// Status is the final outcome.
	Status FileStatus `json:"status" yaml:"status"`

	// IDs is the number of identifiers written, for converted files.
	IDs int `json:"ids,omitempty" yaml:"ids,omitempty"`

	// Detail is the skip reason or failure message, when there is one.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// RunReport summarizes one conversion run.
type RunReport struct {
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	InputDir string `json:"input_dir" yaml:"input_dir"`
	MergeDir string `json:"merge_dir" yaml:"merge_dir"`

	// MergeIDs is the size of the merge set built for this run.
	MergeIDs int `json:"merge_ids" yaml:"merge_ids"`

	Files []FileReport `json:"files" yaml:"files"`

	Converted int `json:"converted" yaml:"converted"`
	Skipped   int `json:"skipped" yaml:"skipped"`
	Failed    int `json:"failed" yaml:"failed"`
}

// Add appends a file outcome and updates the counters.
func (r *RunReport) Add(f FileReport) {
	r.Files = append(r.Files, f)
	switch {
	case f.Status == StatusConverted:
		r.Converted++
	case f.Status == StatusFailed:
		r.Failed++
	case f.Status.Skipped():
		r.Skipped++
	}
}

// Total returns the number of files the run looked at.
func (r RunReport) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r RunReport) HasFailures() bool {
	return r.Failed > 0
}
