// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhruska/idconvert/internal/table"
	"github.com/jhruska/idconvert/pkg/types"
)

const (
	idColumn        = "ID"
	sourceColumn    = "ID Subjektu"
	convertedSuffix = "_converted"
)

// OutputPath returns the converted-file path for an input: the
// "_converted" suffix is inserted before the extension, in the same folder
// as the source.
func OutputPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + convertedSuffix + ext
}

// Classification is the selector's verdict on one candidate input file.
type Classification struct {
	Path   string
	Status types.FileStatus
	Detail string
}

// Eligible reports whether the file should proceed to conversion.
func (c Classification) Eligible() bool {
	return c.Status == types.StatusEligible
}

// Classify applies the skip rules to one candidate input file. Files whose
// header cannot be read are classified eligible; the converter surfaces
// the read error as a per-file failure.
func Classify(path string) Classification {
	name := filepath.Base(path)

	if strings.HasSuffix(name, convertedSuffix+".csv") {
		return Classification{path, types.StatusSkippedConverted, "already a converted file"}
	}

	if _, err := os.Stat(OutputPath(path)); err == nil {
		return Classification{path, types.StatusSkippedExists, "converted file already exists"}
	}

	t, err := table.Read(path)
	if err != nil {
		return Classification{Path: path, Status: types.StatusEligible}
	}

	if !t.HasColumn(sourceColumn) {
		if t.HasColumn(idColumn) {
			return Classification{path, types.StatusSkippedIDOnly, "already converted (has ID column only)"}
		}
		return Classification{path, types.StatusSkippedNoColumn,
			fmt.Sprintf("missing required column %q", sourceColumn)}
	}

	return Classification{Path: path, Status: types.StatusEligible}
}
