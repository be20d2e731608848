package parser

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// DefaultInclude selects the files read from an input directory.
var DefaultInclude = []string{"*.log", "*.txt"}

// ListLogFiles returns the regular files directly inside dir whose base name
// matches any of the include patterns. Subdirectories are not descended into.
// Results are sorted by name for deterministic ordering.
func ListLogFiles(fsys afero.Fs, dir string, include []string) ([]string, error) {
	if len(include) == 0 {
		include = DefaultInclude
	}

	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern %q", pattern)
		}
	}

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var result []string
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}
		if matchesAny(entry.Name(), include) {
			result = append(result, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(result)

	return result, nil
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
