package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "logcsv: %d files, %d lines, %d CSV files written to %s\n",
		report.Summary.FilesRead,
		report.Summary.LinesProcessed,
		len(report.Groups)-report.Summary.GroupsFailed,
		report.Metadata.OutputDir)
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== logcsv Conversion Report ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Input:  %s\n", report.Metadata.InputDir)
	fmt.Fprintf(w, "Output: %s\n", report.Metadata.OutputDir)
	fmt.Fprintln(w)

	for _, g := range report.Groups {
		if g.Failed() {
			fmt.Fprintf(w, "  [FAILED] %s: %s\n", g.Path, g.Error)
			continue
		}
		fmt.Fprintf(w, "  Wrote %d entries to %s\n", g.Records, g.Path)
	}
	if len(report.Groups) > 0 {
		fmt.Fprintln(w)
	}

	if f.opts.Verbose {
		fmt.Fprintln(w, "Sources:")
		for _, src := range report.Metadata.Sources {
			fmt.Fprintf(w, "  - %s\n", src)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "---")
	_, err := fmt.Fprintf(w, "Summary: %d files read, %d skipped, %d lines, %d records written\n",
		report.Summary.FilesRead,
		report.Summary.FilesSkipped,
		report.Summary.LinesProcessed,
		report.Summary.RecordsWritten)
	if err != nil {
		return err
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	if report.HasFailures() {
		fmt.Fprintf(w, "Warnings: %d unreadable files, %d partly read files, %d CSV files not written (see log)\n",
			report.Summary.FilesSkipped, report.Summary.FilesTruncated, report.Summary.GroupsFailed)
	}

	fmt.Fprintln(w, "Processing complete.")
	return nil
}
