// Package config provides configuration loading and validation for logcsv.
package config

// Config is the root configuration structure loaded from YAML and the environment.
type Config struct {
	// InputDir is the directory scanned for log files.
	// Empty means the "syslog" directory beside the executable.
	InputDir string `yaml:"input_dir,omitempty" env:"LOGCSV_INPUT_DIR"`

	// OutputDir is the base name of the output directory. When it already
	// exists a "(N)" suffix is appended.
	OutputDir string `yaml:"output_dir" env:"LOGCSV_OUTPUT_DIR"`

	// Include lists the file name patterns (doublestar syntax) to read.
	Include []string `yaml:"include" env:"LOGCSV_INCLUDE" envSeparator:","`

	// Log controls diagnostic logging.
	Log LogConfig `yaml:"log"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" env:"LOGCSV_LOG_LEVEL"`

	// JSON switches the logger to JSON lines.
	JSON bool `yaml:"json" env:"LOGCSV_LOG_JSON"`
}
