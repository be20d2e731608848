package commands

import (
	"github.com/spf13/cobra"

	"github.com/ccollicutt/logcsv/pkg/config"
)

// GlobalOptions holds flags shared by every command.
type GlobalOptions struct {
	ConfigFile string
	LogLevel   string
	LogJSON    bool
}

// AddGlobalFlags registers the persistent flags on the root command.
func AddGlobalFlags(cmd *cobra.Command, opts *GlobalOptions) {
	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVar(&opts.LogJSON, "log-json", false, "Emit diagnostics as JSON lines")
}

// applyGlobalFlags copies explicitly set global flags over the loaded config.
func applyGlobalFlags(cmd *cobra.Command, opts *GlobalOptions, cfg *config.Config) error {
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = opts.LogLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON = opts.LogJSON
	}
	return config.Validate(cfg)
}
