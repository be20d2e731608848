// Package cli provides the command-line interface for logcsv.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logcsv/internal/cli/commands"
	"github.com/ccollicutt/logcsv/pkg/config"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

// execute runs the root command with args and maps any error to exit code 1.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	global := &commands.GlobalOptions{}
	convert := &commands.ConvertOptions{}

	rootCmd := &cobra.Command{
		Use:   "logcsv [input-dir]",
		Short: "Convert device log files to CSV",
		Long: `logcsv converts a directory of device log files into CSV files.

Every .log and .txt file in the input directory is read line by line. Each
line is matched against the known log layouts (bracketed timestamps, tag
pairs, syslog) and split into timestamp, source, level and message. Lines
that match no layout are kept whole as the message.

Records are grouped by log type, derived from the file name, so rotated
files such as syslog.log, syslog.log.1 and syslog2.log end up in one
syslog.csv. CSVs are written to ./output, or output(1), output(2), ... if
that directory already exists.

If no input directory is given, the "syslog" directory next to the logcsv
binary is used.

Exit codes:
  0 - Conversion completed (including when no log files were found)
  1 - Invalid input directory or other fatal error`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return fmt.Errorf("loading .env: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunConvert(cmd, args, global, convert)
		},
	}

	commands.AddGlobalFlags(rootCmd, global)
	commands.AddConvertFlags(rootCmd, convert)

	// Add subcommands
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
