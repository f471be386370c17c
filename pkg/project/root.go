package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrProjectRootNotFound is returned when no ancestor directory holds a package.json.
var ErrProjectRootNotFound = errors.New("couldn't find project root folder")

// FindRoot searches upward from startDir for the nearest directory that
// contains a package.json file.
func FindRoot(fsys afero.Fs, startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", startDir, err)
	}

	for {
		if info, err := fsys.Stat(filepath.Join(dir, SlotPackage.Path())); err == nil && info.Mode().IsRegular() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%w (searched upward from %s)", ErrProjectRootNotFound, startDir)
}
