// Package gitutil provides best-effort git working-tree inspection.
package gitutil

import (
	"os/exec"
	"strings"
)

var lookPathFunc = exec.LookPath

// IsDirty reports whether the working tree at root has uncommitted changes.
//
// The check is best-effort: a missing git binary or a directory that is not a
// git repository both report a clean tree, so the upgrade engine never fails
// on environments without git.
func IsDirty(root string) bool {
	if _, err := lookPathFunc("git"); err != nil {
		return false
	}
	cmd := exec.Command("git", "-C", root, "status", "--porcelain")
	out, err := cmd.Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) != ""
}
