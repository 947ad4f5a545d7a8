package upgrade

import (
	"os"

	"github.com/velocity-kit/velocity-cli/internal/fsutil"
)

// System abstracts the filesystem operations the orchestrator performs
// itself. It is intentionally package-local so orchestrator tests can fail
// individual operations without shared global state; the leaf packages own
// their own file access.
type System interface {
	MkdirAll(path string, perm os.FileMode) error
	RemoveAll(path string) error
	CopyFile(src string, dst string) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// RemoveAll removes path and any children it contains.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// CopyFile copies src to dst byte for byte, creating parent directories.
func (RealSystem) CopyFile(src string, dst string) error {
	return fsutil.CopyFile(src, dst)
}
