package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/logcsv/pkg/config"
	"github.com/ccollicutt/logcsv/pkg/parser"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a logcsv configuration file without converting anything.

Checks:
  - YAML syntax
  - Include pattern syntax
  - Output directory name
  - Log level
  - Input directory contents (warning only)

LOGCSV_* environment variables are applied before validation, exactly as
they are for a conversion.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()
	fsys := afero.NewOsFs()

	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, fsys, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	inputDir := cfg.InputDir
	inputNote := ""
	if inputDir == "" {
		if inputDir, err = config.DefaultInputDir(); err != nil {
			return err
		}
		inputNote = " (default)"
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Input directory:  %s%s\n", inputDir, inputNote)
	fmt.Fprintf(out, "  Output directory: %s\n", cfg.OutputDir)
	fmt.Fprintf(out, "  Include:          %s\n", strings.Join(cfg.Include, ", "))
	fmt.Fprintf(out, "  Log level:        %s\n", cfg.Log.Level)

	// Check the input directory (warnings only)
	isDir, err := afero.IsDir(fsys, inputDir)
	if err != nil || !isDir {
		fmt.Fprintf(out, "\nWarning: Input directory %s does not exist or is not a directory\n", inputDir)
		return nil
	}

	files, err := parser.ListLogFiles(fsys, inputDir, cfg.Include)
	if err != nil {
		fmt.Fprintf(out, "\nWarning: Error listing input directory: %v\n", err)
	} else if len(files) == 0 {
		fmt.Fprintf(out, "\nWarning: No files match the include patterns\n")
	} else {
		fmt.Fprintf(out, "\nLog files matched: %d\n", len(files))
		for _, f := range files {
			fmt.Fprintf(out, "  - %s\n", f)
		}
	}

	return nil
}
