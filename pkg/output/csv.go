package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/ccollicutt/logcsv/pkg/parser"
)

// Header is the first line of every CSV file.
const Header = "Timestamp,Source,Log Level,Message,File"

// EscapeCSV doubles embedded quotes and wraps the field in quotes when it
// contains a comma, newline or quote.
func EscapeCSV(field string) string {
	escaped := strings.ReplaceAll(field, `"`, `""`)
	if strings.ContainsAny(escaped, ",\n\"") {
		return `"` + escaped + `"`
	}
	return escaped
}

// CSVWriter writes LogRecords as CSV rows.
type CSVWriter struct {
	w    *bufio.Writer
	rows int
}

// NewCSVWriter creates a writer that emits rows to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the header line.
func (c *CSVWriter) WriteHeader() error {
	_, err := c.w.WriteString(Header + "\n")
	return err
}

// Write writes one record as a row.
func (c *CSVWriter) Write(rec parser.LogRecord) error {
	fields := [...]string{rec.Timestamp, rec.Source, rec.Level, rec.Message, rec.File}
	for i, f := range fields {
		if i > 0 {
			if err := c.w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := c.w.WriteString(EscapeCSV(f)); err != nil {
			return err
		}
	}
	if err := c.w.WriteByte('\n'); err != nil {
		return err
	}
	c.rows++
	return nil
}

// Rows returns the number of records written so far.
func (c *CSVWriter) Rows() int {
	return c.rows
}

// Flush writes any buffered data to the underlying writer.
func (c *CSVWriter) Flush() error {
	return c.w.Flush()
}
