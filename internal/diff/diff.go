// Package diff classifies manifest-declared safe files between a project and
// a freshly downloaded template.
package diff

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/velocity-kit/velocity-cli/internal/pathset"
)

// Status is the runtime diff classification of a single file.
type Status string

const (
	// StatusAdded marks a template file absent from the project.
	StatusAdded Status = "added"
	// StatusModified marks a file whose bytes differ between project and template.
	StatusModified Status = "modified"
	// StatusUnchanged marks a byte-identical file.
	StatusUnchanged Status = "unchanged"
	// StatusRemoved is declared for completeness; the classifier never emits
	// it because deletions are out of scope for the engine.
	StatusRemoved Status = "removed"
)

// Category is the declarative manifest partition a file belongs to.
// It is deliberately distinct from Status: protected files are excluded from
// diffing by construction, so CategoryProtected is never produced either.
type Category string

const (
	// CategorySafe marks files eligible for automatic replacement.
	CategorySafe Category = "safe"
	// CategoryProtected marks files the engine must never touch.
	CategoryProtected Category = "protected"
)

// FileDiff is the classification result for one project-relative path.
// Results are produced fresh on every run and never persisted.
type FileDiff struct {
	Path     string
	Status   Status
	Category Category
}

// Tally holds diff counts by status. Removed entries, if a caller ever
// constructs them, are intentionally not counted.
type Tally struct {
	Added     int
	Modified  int
	Unchanged int
}

// Changed reports whether the tally contains any file work to apply.
func (t Tally) Changed() bool {
	return t.Added > 0 || t.Modified > 0
}

// Classify resolves safeEntries against freshRoot and classifies each
// resolved file as added, modified, or unchanged relative to currentRoot.
//
// Paths the fresh template itself lacks are skipped: a manifest should never
// declare a path its own template does not ship, and a stale declaration must
// not fail the whole upgrade. Files outside the declared safe set are
// invisible regardless of actual differences.
func Classify(currentRoot string, freshRoot string, safeEntries []string) ([]FileDiff, error) {
	paths := pathset.Expand(freshRoot, safeEntries)
	diffs := make([]FileDiff, 0, len(paths))
	for _, rel := range paths {
		freshPath := filepath.Join(freshRoot, filepath.FromSlash(rel))
		freshData, err := os.ReadFile(freshPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read template file %s: %w", freshPath, err)
		}

		currentPath := filepath.Join(currentRoot, filepath.FromSlash(rel))
		currentData, err := os.ReadFile(currentPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				diffs = append(diffs, FileDiff{Path: rel, Status: StatusAdded, Category: CategorySafe})
				continue
			}
			return nil, fmt.Errorf("read project file %s: %w", currentPath, err)
		}

		status := StatusUnchanged
		if !bytes.Equal(currentData, freshData) {
			status = StatusModified
		}
		diffs = append(diffs, FileDiff{Path: rel, Status: status, Category: CategorySafe})
	}
	return diffs, nil
}

// CountStatuses reduces a diff list to a Tally.
func CountStatuses(diffs []FileDiff) Tally {
	var t Tally
	for _, d := range diffs {
		switch d.Status {
		case StatusAdded:
			t.Added++
		case StatusModified:
			t.Modified++
		case StatusUnchanged:
			t.Unchanged++
		}
	}
	return t
}

// ByStatus returns the paths in diffs carrying the given status, preserving
// classification order.
func ByStatus(diffs []FileDiff, status Status) []string {
	var out []string
	for _, d := range diffs {
		if d.Status == status {
			out = append(out, d.Path)
		}
	}
	return out
}
