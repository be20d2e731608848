package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// quietReport is the one-object form of the quiet text line.
type quietReport struct {
	OutputDir  string `json:"output_dir"`
	Files      int    `json:"files"`
	Lines      int    `json:"lines"`
	CSVFiles   int    `json:"csv_files"`
	HasFailures bool  `json:"has_failures"`
}

// Format renders the report as indented JSON. Quiet mode emits only the
// output directory and the counts shown by the quiet text line.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		return encoder.Encode(quietReport{
			OutputDir:  report.Metadata.OutputDir,
			Files:      report.Summary.FilesRead,
			Lines:      report.Summary.LinesProcessed,
			CSVFiles:   len(report.Groups) - report.Summary.GroupsFailed,
			HasFailures: report.HasFailures(),
		})
	}

	return encoder.Encode(report)
}
