// Package manifest loads the upgrade contract shipped inside a Velocity template.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/velocity-kit/velocity-cli/internal/messages"
)

// FileName is the manifest location inside a downloaded template root.
const FileName = "upgrade.manifest.json"

// DefaultSearchPath is the search root for migration steps that declare none.
const DefaultSearchPath = "src"

// Manifest declares the upgrade contract for one template version.
type Manifest struct {
	Version       string          `json:"version"`
	MinCliVersion string          `json:"minCliVersion"`
	Files         Files           `json:"files"`
	Dependencies  Dependencies    `json:"dependencies"`
	Migrations    []MigrationStep `json:"migrations"`
}

// Files partitions template paths into the safe and protected sets.
// The two sets must not overlap; that is an authoring contract on the
// template side, not something the engine enforces.
type Files struct {
	Safe      []string `json:"safe"`
	Protected []string `json:"protected"`
}

// Dependencies describes the declarative package descriptor delta.
type Dependencies struct {
	Update map[string]string `json:"update"`
	Add    map[string]string `json:"add"`
	Remove []string          `json:"remove"`
}

// Empty reports whether the delta carries no operations at all.
func (d Dependencies) Empty() bool {
	return len(d.Update) == 0 && len(d.Add) == 0 && len(d.Remove) == 0
}

// MigrationStep is a manual-action item with optional content detection.
// Title doubles as the step's unique key. Steps without a Pattern are
// informational only. SearchPaths defaults to DefaultSearchPath when empty.
type MigrationStep struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Pattern     string   `json:"pattern,omitempty"`
	SearchPaths []string `json:"searchPaths,omitempty"`
}

// Load reads the manifest from a template root. The found flag is false when
// the template ships no manifest; callers substitute a fallback in that case.
func Load(templateRoot string) (*Manifest, bool, error) {
	path := filepath.Join(templateRoot, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf(messages.ManifestParseErrFmt, path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, false, fmt.Errorf(messages.ManifestParseErrFmt, path, err)
	}
	return &m, true, nil
}

// Fallback builds a conservative manifest for templates that ship none.
// The safe-file list and engine floor come from engine configuration; the
// target version is read best-effort from the template's own package.json.
func Fallback(templateRoot string, safeFiles []string, minCliVersion string) *Manifest {
	return &Manifest{
		Version:       templatePackageVersion(templateRoot),
		MinCliVersion: minCliVersion,
		Files:         Files{Safe: safeFiles},
	}
}

// templatePackageVersion reads the version field from the template's own
// package descriptor. Any failure yields an empty version; the upgrade then
// proceeds as a plain file sync without a meaningful no-op check.
func templatePackageVersion(templateRoot string) string {
	data, err := os.ReadFile(filepath.Join(templateRoot, "package.json"))
	if err != nil {
		return ""
	}
	var pkg struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return ""
	}
	return pkg.Version
}
