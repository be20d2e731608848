package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/logcsv/pkg/config"
	"github.com/ccollicutt/logcsv/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output      string
	SampleSize  int
	ShowAll     bool
	WriteConfig string
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <log-file>",
		Short: "Show which log layouts a file uses",
		Long: `Classify a sample of a log file and report which known layouts it uses.

Reports the most common layout, how many sampled lines each layout matched,
and how the first matching line is split into CSV columns. Lines that match
no layout are counted as fallback and would be written with only the
Message column filled.

Optionally generates a starter config file with --write-config.

Layouts:
  - bracketed-timestamp  [02/19 01:15:01][CM][INFO]message
  - uppercase-tags       [INFO] [FOTA] message
  - bracketed-tags       [MMM][INFO]message
  - bracketed-syslog     [cellwan] Feb 14 02:20:11 user.notice DALCMD: message
  - syslog               Feb 19 01:55:01 user.info zcmdModuleCfg: message
  - timestamp-only       [12/31 18:35:49]

Example:
  logcsv detect syslog/syslog.log
  logcsv detect --sample 500 --all syslog/cm.log
  logcsv detect -w logcsv.yaml syslog/syslog.log`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", detector.DefaultSampleSize, "Number of lines to sample")
	cmd.Flags().BoolVar(&opts.ShowAll, "all", false, "Show every layout seen, not just the most common")
	cmd.Flags().StringVarP(&opts.WriteConfig, "write-config", "w", "", "Write starter config to file (will not overwrite)")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	logFile := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	fsys := afero.NewOsFs()
	out := cmd.OutOrStdout()

	if exists, _ := afero.Exists(fsys, logFile); !exists {
		return fmt.Errorf("log file not found: %s", logFile)
	}

	d := detector.New(detector.WithSampleSize(opts.SampleSize))

	result, err := d.DetectFromFile(ctx, fsys, logFile)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	if opts.WriteConfig != "" {
		if err := writeStarterConfig(fsys, out, logFile, opts.WriteConfig); err != nil {
			return err
		}
	}

	switch opts.Output {
	case "json":
		return outputDetectJSON(out, result, logFile, opts)
	case "text", "":
		return outputDetectText(out, result, logFile, opts)
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

func outputDetectText(w io.Writer, result *detector.DetectionResult, logFile string, opts *DetectOptions) error {
	fmt.Fprintln(w, "=== Log Layout Detection ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "File: %s\n", logFile)
	fmt.Fprintf(w, "Lines sampled: %d\n", result.SampledLines)
	fmt.Fprintf(w, "Structured lines: %d (%.1f%%)\n", result.StructuredLines, result.Coverage()*100)
	fmt.Fprintln(w)

	if !result.HasMatch() {
		fmt.Fprintln(w, "No known log layout detected.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Every line will be written with only the Message column filled.")
		return nil
	}

	best := result.BestMatch()
	fmt.Fprintf(w, "Detected layout: %s\n", best.Kind)
	fmt.Fprintf(w, "Confidence: %.1f%% (%d/%d lines matched)\n",
		best.Confidence*100, best.MatchCount, result.SampledLines)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Sample match:\n  %s\n", best.SampleLine)
	fmt.Fprintln(w, "Parsed as:")
	fmt.Fprintf(w, "  Timestamp: %s\n", best.Record.Timestamp)
	fmt.Fprintf(w, "  Source:    %s\n", best.Record.Source)
	fmt.Fprintf(w, "  Log Level: %s\n", best.Record.Level)
	fmt.Fprintf(w, "  Message:   %s\n", best.Record.Message)
	fmt.Fprintln(w)

	if opts.ShowAll && len(result.Matches) > 1 {
		fmt.Fprintln(w, "--- All layouts seen ---")
		for i, m := range result.Matches {
			fmt.Fprintf(w, "%d. %s (%d lines, %.1f%%)\n", i+1, m.Kind, m.MatchCount, m.Confidence*100)
			fmt.Fprintf(w, "   sample: %s\n", m.SampleLine)
		}
		fmt.Fprintln(w)
	}

	return nil
}

// JSONMatch represents a layout match in JSON output.
type JSONMatch struct {
	Layout     string  `json:"layout"`
	Confidence float64 `json:"confidence"`
	MatchCount int     `json:"match_count"`
	SampleLine string  `json:"sample_line"`
	Timestamp  string  `json:"timestamp,omitempty"`
	Source     string  `json:"source,omitempty"`
	Level      string  `json:"level,omitempty"`
	Message    string  `json:"message"`
}

// JSONOutput represents the full JSON output.
type JSONOutput struct {
	File            string      `json:"file"`
	Matches         []JSONMatch `json:"matches"`
	SampledLines    int         `json:"sampled_lines"`
	StructuredLines int         `json:"structured_lines"`
	Coverage        float64     `json:"coverage"`
}

func outputDetectJSON(w io.Writer, result *detector.DetectionResult, logFile string, opts *DetectOptions) error {
	output := JSONOutput{
		File:            logFile,
		SampledLines:    result.SampledLines,
		StructuredLines: result.StructuredLines,
		Coverage:        result.Coverage(),
		Matches:         make([]JSONMatch, 0),
	}

	matches := result.Matches
	if !opts.ShowAll {
		matches = nil
		if best := result.BestMatch(); best != nil {
			matches = []detector.PatternMatch{*best}
		}
	}

	for _, m := range matches {
		output.Matches = append(output.Matches, JSONMatch{
			Layout:     string(m.Kind),
			Confidence: m.Confidence,
			MatchCount: m.MatchCount,
			SampleLine: m.SampleLine,
			Timestamp:  m.Record.Timestamp,
			Source:     m.Record.Source,
			Level:      m.Record.Level,
			Message:    m.Record.Message,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// writeStarterConfig writes a config that converts the directory holding logFile.
func writeStarterConfig(fsys afero.Fs, w io.Writer, logFile, configPath string) error {
	if exists, _ := afero.Exists(fsys, configPath); exists {
		return fmt.Errorf("config file already exists: %s (will not overwrite)", configPath)
	}

	content, err := generateStarterConfig(logFile)
	if err != nil {
		return err
	}

	if err := afero.WriteFile(fsys, configPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(w, "Wrote starter config to: %s\n\n", configPath)
	return nil
}

// generateStarterConfig renders the default configuration with input_dir
// pointing at the directory of logFile.
func generateStarterConfig(logFile string) ([]byte, error) {
	dir := filepath.Dir(logFile)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	cfg := config.DefaultConfig()
	cfg.InputDir = dir

	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	header := fmt.Sprintf(`# logcsv configuration
# Generated by: logcsv detect %s
#
# Environment variables (LOGCSV_INPUT_DIR, LOGCSV_OUTPUT_DIR, LOGCSV_INCLUDE,
# LOGCSV_LOG_LEVEL, LOGCSV_LOG_JSON) override these values.

`, filepath.Base(logFile))

	return append([]byte(header), body...), nil
}
