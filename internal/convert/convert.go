// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the CSV subject-ID conversion pipeline:
// select candidate files from the input folder, extract the "ID Subjektu"
// column from each, union it with the merge set, and write a sorted
// single-column "ID" file next to the source.
package convert

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jhruska/idconvert/internal/mergeset"
	"github.com/jhruska/idconvert/internal/table"
	"github.com/jhruska/idconvert/pkg/types"
)

// ConvertFile converts one eligible input file, writing the single-column
// output at OutputPath(path). The merge set is read, never modified. An
// output file already present at write time is an error, not an overwrite:
// the selector should have skipped the file, so an existing target means
// the world changed underneath the run. Returns the number of IDs written.
func ConvertFile(path string, merge mergeset.Set) (int, error) {
	t, err := table.Read(path)
	if err != nil {
		return 0, err
	}

	values, ok := t.Column(sourceColumn)
	if !ok {
		return 0, fmt.Errorf("column %q not found", sourceColumn)
	}

	ids := merge.Union(values)

	out := OutputPath(path)
	f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return 0, fmt.Errorf("output %s already exists", filepath.Base(out))
		}
		return 0, fmt.Errorf("creating %s: %w", filepath.Base(out), err)
	}

	w := csv.NewWriter(f)
	w.Write([]string{idColumn})
	for _, id := range ids {
		w.Write([]string{id})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return 0, fmt.Errorf("writing %s: %w", filepath.Base(out), err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing %s: %w", filepath.Base(out), err)
	}

	return len(ids), nil
}

// Run executes the whole pipeline: build the merge set once, classify
// every candidate in the input folder, and convert the eligible ones
// sequentially. Per-file problems are reported on w and recorded in the
// returned report; the only error Run returns is the fatal
// missing-input-folder condition.
func Run(folders types.FoldersConfig, w io.Writer) (types.RunReport, error) {
	report := types.RunReport{
		StartedAt: time.Now().UTC(),
		InputDir:  folders.InputDir,
		MergeDir:  folders.MergeDir,
	}

	if _, err := os.Stat(folders.InputDir); err != nil {
		if os.IsNotExist(err) {
			return report, fmt.Errorf("input folder not found: %s", folders.InputDir)
		}
		return report, fmt.Errorf("reading input folder: %w", err)
	}

	merge := mergeset.Build(folders.MergeDir, w)
	report.MergeIDs = merge.Len()
	if merge.Len() > 0 {
		fmt.Fprintf(w, "merge: %d unique IDs collected\n", merge.Len())
	}

	paths, err := listCSV(folders.InputDir)
	if err != nil {
		return report, fmt.Errorf("reading input folder: %w", err)
	}
	if len(paths) == 0 {
		fmt.Fprintf(w, "no CSV files in %s\n", folders.InputDir)
	}

	for _, path := range paths {
		name := filepath.Base(path)

		c := Classify(path)
		if !c.Eligible() {
			fmt.Fprintf(w, "skipped: %s (%s)\n", name, c.Detail)
			report.Add(types.FileReport{Name: name, Status: c.Status, Detail: c.Detail})
			continue
		}

		n, err := ConvertFile(path, merge)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
			report.Add(types.FileReport{Name: name, Status: types.StatusFailed, Detail: err.Error()})
			continue
		}
		fmt.Fprintf(w, "converted: %s (%d IDs)\n", name, n)
		report.Add(types.FileReport{Name: name, Status: types.StatusConverted, IDs: n})
	}

	fmt.Fprintf(w, "\nRun summary: %d converted, %d skipped, %d failed (total: %d)\n",
		report.Converted, report.Skipped, report.Failed, report.Total())
	return report, nil
}

// listCSV returns the ".csv" files directly inside dir, sorted by name so
// runs are deterministic regardless of filesystem enumeration order.
func listCSV(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".csv" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
