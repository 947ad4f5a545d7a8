// Package migrate detects which manual migration steps affect a project.
package migrate

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/velocity-kit/velocity-cli/internal/manifest"
	"github.com/velocity-kit/velocity-cli/internal/messages"
)

// skipDirs are conventional dependency and VCS directories never scanned.
var skipDirs = map[string]struct{}{
	"node_modules": {},
	".git":         {},
	"dist":         {},
}

// Scan evaluates each migration step's detection pattern against the project
// tree and returns matching project-relative paths keyed by step title.
//
// Steps without a pattern record an empty match list; they are informational
// only. The scan is read-only and best-effort: unreadable or binary files are
// skipped silently, never fatal.
func Scan(projectRoot string, steps []manifest.MigrationStep) (map[string][]string, error) {
	matches := make(map[string][]string, len(steps))
	for _, step := range steps {
		if step.Pattern == "" {
			matches[step.Title] = nil
			continue
		}
		pattern, err := regexp.Compile(step.Pattern)
		if err != nil {
			return nil, fmt.Errorf(messages.ManifestPatternErrFmt, step.Title, err)
		}
		searchPaths := step.SearchPaths
		if len(searchPaths) == 0 {
			searchPaths = []string{manifest.DefaultSearchPath}
		}
		var stepMatches []string
		seen := make(map[string]struct{})
		for _, searchPath := range searchPaths {
			for _, rel := range scanPath(projectRoot, searchPath, pattern) {
				if _, dup := seen[rel]; dup {
					continue
				}
				seen[rel] = struct{}{}
				stepMatches = append(stepMatches, rel)
			}
		}
		matches[step.Title] = stepMatches
	}
	return matches, nil
}

// scanPath walks one declared search path and returns project-relative paths
// of files whose content matches pattern.
func scanPath(projectRoot string, searchPath string, pattern *regexp.Regexp) []string {
	root := filepath.Join(projectRoot, filepath.FromSlash(searchPath))
	var out []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Missing search paths and permission errors are tolerated.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip {
				return fs.SkipDir
			}
			return nil
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil || looksBinary(data) {
			return nil
		}
		if !pattern.Match(data) {
			return nil
		}
		rel, relErr := filepath.Rel(projectRoot, path)
		if relErr != nil {
			return nil
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out
}

// looksBinary reports whether content appears to be non-text. A NUL byte in
// the leading window is the same heuristic git uses.
func looksBinary(data []byte) bool {
	window := data
	if len(window) > 8000 {
		window = window[:8000]
	}
	return bytes.IndexByte(window, 0) >= 0
}
