// Package pathset expands declared path patterns into concrete file sets.
package pathset

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Expand resolves declared entries against root into a deduplicated, sorted
// set of slash-separated relative file paths.
//
// An entry denotes a directory when it carries a trailing separator or when it
// resolves to an existing directory under root; directory entries expand to
// every file beneath them. Anything else is kept as a single literal file
// path. Entries rooted at directories that do not exist expand to nothing.
func Expand(root string, entries []string) []string {
	seen := make(map[string]struct{})
	for _, entry := range entries {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		rel := filepath.ToSlash(strings.Trim(trimmed, "/"))
		abs := filepath.Join(root, filepath.FromSlash(rel))
		if isDirEntry(trimmed, abs) {
			for _, file := range walkFiles(root, abs) {
				seen[file] = struct{}{}
			}
			continue
		}
		seen[rel] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for path := range seen {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// isDirEntry reports whether a declared entry should expand recursively.
func isDirEntry(entry string, abs string) bool {
	if strings.HasSuffix(entry, "/") || strings.HasSuffix(entry, string(os.PathSeparator)) {
		return true
	}
	info, err := os.Stat(abs)
	return err == nil && info.IsDir()
}

// walkFiles lists every file beneath dir as a path relative to root.
// Missing directories yield an empty list rather than an error.
func walkFiles(root string, dir string) []string {
	var files []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	return files
}
