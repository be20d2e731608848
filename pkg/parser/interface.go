package parser

import (
	"context"
	"fmt"
)

// LineSource provides an iterator over raw, non-empty log lines.
// Implementations must be safe for sequential access (not concurrent).
type LineSource interface {
	// Next returns the next non-empty line.
	// Returns io.EOF when no more lines are available.
	// A file that cannot be opened is reported as an *OpenError and a file
	// that fails while being read as a *ReadError. In both cases the source
	// stays usable and the following call moves on to the next file.
	Next(ctx context.Context) (*LogLine, error)

	// Close releases any resources held by the source.
	Close() error
}

// OpenError reports a log file that could not be opened for reading.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("opening log file %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ReadError reports a log file that failed after Line lines had been read.
// Lines before the failure have already been returned.
type ReadError struct {
	Path string
	Line int
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading log file %s after line %d: %v", e.Path, e.Line, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
