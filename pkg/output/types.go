// Package output provides CSV writing, output directory naming and run reports.
package output

import "time"

// Report is the complete conversion summary.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Groups lists one entry per log type, in the order written.
	Groups []GroupResult `json:"groups"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// FilesRead is the number of input files that were opened.
	FilesRead int `json:"files_read"`

	// FilesSkipped is the number of input files that could not be opened.
	FilesSkipped int `json:"files_skipped"`

	// FilesTruncated is the number of input files that failed part way
	// through. They count as read and their earlier lines are written.
	FilesTruncated int `json:"files_truncated"`

	// LinesProcessed is the number of non-empty lines classified.
	LinesProcessed int `json:"lines_processed"`

	// RecordsWritten is the number of rows written across all CSV files.
	RecordsWritten int `json:"records_written"`

	// GroupsFailed is the number of log types whose CSV could not be written.
	GroupsFailed int `json:"groups_failed"`
}

// GroupResult describes the CSV written for one log type.
type GroupResult struct {
	// LogType is the grouping key.
	LogType string `json:"log_type"`

	// Path is the CSV file path.
	Path string `json:"path"`

	// Records is the number of rows written.
	Records int `json:"records"`

	// Error is set when the CSV could not be written.
	Error string `json:"error,omitempty"`
}

// Metadata provides context about the conversion run.
type Metadata struct {
	// InputDir is the directory that was scanned.
	InputDir string `json:"input_dir"`

	// OutputDir is the directory the CSV files were written to.
	OutputDir string `json:"output_dir"`

	// Sources lists the log files that were considered.
	Sources []string `json:"sources"`

	// StartedAt is when the conversion began.
	StartedAt time.Time `json:"started_at"`

	// Duration is how long the conversion took.
	Duration time.Duration `json:"duration"`
}

// Failed returns true if the group could not be written.
func (g GroupResult) Failed() bool {
	return g.Error != ""
}

// HasFailures returns true if any input file or output group failed.
func (r *Report) HasFailures() bool {
	return r.Summary.FilesSkipped > 0 || r.Summary.FilesTruncated > 0 || r.Summary.GroupsFailed > 0
}
