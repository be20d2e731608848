package commands

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/logcsv/internal/logger"
	"github.com/ccollicutt/logcsv/pkg/config"
	"github.com/ccollicutt/logcsv/pkg/converter"
	"github.com/ccollicutt/logcsv/pkg/output"
)

// ConvertOptions holds command-line options for the conversion.
type ConvertOptions struct {
	Output    string
	OutputDir string
	Include   []string
	Verbose   bool
	Quiet     bool
}

// AddConvertFlags registers the conversion flags on cmd.
func AddConvertFlags(cmd *cobra.Command, opts *ConvertOptions) {
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Report format (text|json)")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", config.DefaultOutputDir, "Base name of the output directory")
	cmd.Flags().StringSliceVar(&opts.Include, "include", nil, "File name patterns to read (default *.log,*.txt)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show source files and timing in the report")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary line only")
}

// RunConvert converts the input directory named by args, the config or the default.
func RunConvert(cmd *cobra.Command, args []string, global *GlobalOptions, opts *ConvertOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fsys := afero.NewOsFs()

	cfg, err := config.Load(ctx, fsys, global.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = opts.OutputDir
	}
	if cmd.Flags().Changed("include") {
		cfg.Include = opts.Include
	}
	if err := applyGlobalFlags(cmd, global, cfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	formatter, err := output.NewFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	log := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Output:     cmd.ErrOrStderr(),
		JSON:       cfg.Log.JSON,
		TimeFormat: logger.DefaultConfig().TimeFormat,
	})

	inputDir, err := resolveInputDir(args, cfg, log)
	if err != nil {
		return err
	}

	c := converter.New(fsys, log,
		converter.WithOutputDir(cfg.OutputDir),
		converter.WithInclude(cfg.Include),
	)

	report, err := c.Run(ctx, inputDir)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

// resolveInputDir picks the positional argument, then the configured
// directory, then the "syslog" directory beside the executable.
func resolveInputDir(args []string, cfg *config.Config, log *charmlog.Logger) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.InputDir != "" {
		return cfg.InputDir, nil
	}

	dir, err := config.DefaultInputDir()
	if err != nil {
		return "", err
	}
	log.Info("No input directory given, using default", "dir", dir)
	return dir, nil
}
