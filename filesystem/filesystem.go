package filesystem

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
)

var ErrNotDirectory = fmt.Errorf("filesystem: web root is not a directory")

// Root is a read-only web root. It only resolves and inspects paths; the
// server never writes below it.
type Root struct {
	dir string
}

// NewRoot validates that dir exists and is a directory.
func NewRoot(dir string) (*Root, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	return &Root{dir: abs}, nil
}

// Dir returns the absolute root directory.
func (r *Root) Dir() string {
	return r.dir
}

// Resolve maps a request path onto the filesystem below the root. The path
// is cleaned rooted at "/" first, so "/../../etc/passwd" cannot climb out.
func (r *Root) Resolve(requestPath string) string {
	return filepath.Join(r.dir, path.Clean("/"+requestPath))
}
