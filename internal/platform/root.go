package platform

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aretw0/folio/pkg/adapters/fs"
)

// ErrRootNotFound is returned by FindRoot when no workspace encloses the start directory.
var ErrRootNotFound = errors.New("workspace root not found")

// FindRoot walks up from startDir to the first directory holding a store
// directory (marker, ".folio" when empty) and returns its absolute path.
func FindRoot(startDir, marker string) (string, error) {
	if marker == "" {
		marker = fs.DefaultDir
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrRootNotFound
		}
		dir = parent
	}
}
