// Package fs provides file-based collaborators for the conversion
// pipeline: the project directory layout, output persistence, and
// banner asset resolution.
package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Subdirectories of a project folder.
const (
	InputDir  = "input"
	OutputDir = "output"
	ConfigDir = "config"
)

// EnsureProject creates the input/, output/, and config/ subdirectories
// under dir if they do not exist.
func EnsureProject(dir string) error {
	for _, sub := range []string{InputDir, OutputDir, ConfigDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return err
		}
	}
	return nil
}

// ListInputs returns the paths of the .html files in the project's
// input directory, sorted by name.
func ListInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(dir, InputDir))
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(entry.Name()), ".html") {
			continue
		}
		paths = append(paths, filepath.Join(dir, InputDir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
