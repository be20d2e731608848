// Package parser provides log file reading and line classification.
package parser

// LogRecord is one classified log line.
type LogRecord struct {
	// Timestamp is normalized to "MM/DD HH:MM:SS", or empty when the line had none.
	Timestamp string

	// Source is the originating subsystem label.
	Source string

	// Level is the severity or category label.
	Level string

	// Message is the remainder of the line, or the whole line for the fallback.
	Message string

	// File is the base name of the file the line came from.
	// Set by the reader, never by Classify.
	File string

	// Pattern names the classifier branch that produced the record.
	Pattern PatternKind
}

// LogLine is a raw log line before classification.
type LogLine struct {
	// Content is the raw line text without the line terminator.
	Content string

	// Source is the file path this line came from.
	Source string

	// LineNum is the 1-based line number in the source file.
	LineNum int
}
