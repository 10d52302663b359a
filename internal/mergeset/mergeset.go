// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mergeset collects supplementary subject IDs from a folder of
// tabular files. The resulting set is built once per run and unioned into
// every converted output.
package mergeset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/jhruska/idconvert/internal/table"
)

// Column names recognized in merge files, in precedence order.
const (
	idColumn      = "ID"
	subjectColumn = "ID Subjektu"
)

// Set is a collection of unique ID strings.
type Set map[string]struct{}

// Contains reports whether v is in the set.
func (s Set) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of IDs in the set.
func (s Set) Len() int { return len(s) }

// Union returns the sorted union of values and the set's contents as a new
// slice. The set itself is never modified.
func (s Set) Union(values []string) []string {
	seen := make(map[string]struct{}, len(s)+len(values))
	for v := range s {
		seen[v] = struct{}{}
	}
	for _, v := range values {
		seen[v] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Build collects IDs from every .csv and .xlsx file directly inside dir,
// in lexicographic filename order. A merge file contributes its "ID"
// column when present, falling back to "ID Subjektu"; files with neither
// column are noted and skipped. A missing folder yields an empty set.
// Problems with individual files are reported on w and never fail the
// build.
func Build(dir string, w io.Writer) Set {
	set := make(Set)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(w, "merge: cannot read %s: %v\n", dir, err)
		}
		return set
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".csv", ".xlsx":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		t, err := table.Read(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(w, "merge: %s: %v\n", name, err)
			continue
		}

		values, ok := t.Column(idColumn)
		if !ok {
			values, ok = t.Column(subjectColumn)
		}
		if !ok {
			fmt.Fprintf(w, "merge: %s: no ID column, skipping\n", name)
			continue
		}

		before := set.Len()
		for _, v := range values {
			set[v] = struct{}{}
		}
		fmt.Fprintf(w, "merge: %s: %d IDs (%d new)\n", name, len(values), set.Len()-before)
	}

	return set
}
