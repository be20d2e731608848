package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ccollicutt/logcsv/pkg/parser"
)

// Default values for configuration.
const (
	DefaultInputDirName = "syslog"
	DefaultOutputDir    = "output"
	DefaultLogLevel     = "info"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Include:   append([]string(nil), parser.DefaultInclude...),
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// DefaultInputDir returns the "syslog" directory next to the running executable.
func DefaultInputDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultInputDirName), nil
}
