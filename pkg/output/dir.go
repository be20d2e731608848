package output

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// DefaultDirName is the base name of the output directory.
const DefaultDirName = "output"

// NextDirName returns base if it does not exist, otherwise the first
// "base(N)" with N = 1, 2, ... that does not exist.
func NextDirName(fsys afero.Fs, base string) (string, error) {
	name := base
	for n := 1; ; n++ {
		exists, err := afero.Exists(fsys, name)
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", name, err)
		}
		if !exists {
			return name, nil
		}
		name = fmt.Sprintf("%s(%d)", base, n)
	}
}

// CreateOutputDir picks a non-colliding directory name derived from base
// and creates it. An existing directory is never reused.
func CreateOutputDir(fsys afero.Fs, base string) (string, error) {
	if base == "" {
		base = DefaultDirName
	}

	for {
		name, err := NextDirName(fsys, base)
		if err != nil {
			return "", err
		}

		err = fsys.Mkdir(name, 0755)
		if err == nil {
			return name, nil
		}
		// Created by someone else since the check; pick again.
		if os.IsExist(err) {
			continue
		}
		return "", fmt.Errorf("creating output directory %s: %w", name, err)
	}
}
