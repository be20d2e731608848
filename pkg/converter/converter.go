// Package converter turns a directory of log files into one CSV per log type.
package converter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/ccollicutt/logcsv/pkg/output"
	"github.com/ccollicutt/logcsv/pkg/parser"
)

// ErrInvalidInputDir is returned when the input path is missing or not a directory.
var ErrInvalidInputDir = errors.New("not a valid folder")

// Logger is the subset of the structured logger the converter needs.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
	Error(msg any, keyvals ...any)
}

// Converter reads log files, classifies every line and writes grouped CSVs.
type Converter struct {
	fs        afero.Fs
	log       Logger
	outputDir string
	include   []string
	now       func() time.Time
}

// Option configures the Converter.
type Option func(*Converter)

// WithOutputDir sets the base name of the output directory (default "output").
func WithOutputDir(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.outputDir = name
		}
	}
}

// WithInclude sets the file name patterns read from the input directory.
func WithInclude(patterns []string) Option {
	return func(c *Converter) {
		if len(patterns) > 0 {
			c.include = patterns
		}
	}
}

// WithClock overrides the time source used for report timing.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		c.now = now
	}
}

// New creates a Converter working on fsys.
func New(fsys afero.Fs, log Logger, opts ...Option) *Converter {
	c := &Converter{
		fs:        fsys,
		log:       log,
		outputDir: output.DefaultDirName,
		include:   parser.DefaultInclude,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run converts every matching file in inputDir.
//
// An invalid input directory is fatal and produces no output. Files that
// cannot be read and CSVs that cannot be written are logged, recorded in the
// report and skipped.
func (c *Converter) Run(ctx context.Context, inputDir string) (*output.Report, error) {
	start := c.now()

	info, err := c.fs.Stat(inputDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%q is %w", inputDir, ErrInvalidInputDir)
	}

	files, err := parser.ListLogFiles(c.fs, inputDir, c.include)
	if err != nil {
		return nil, fmt.Errorf("listing log files: %w", err)
	}

	report := &output.Report{
		Metadata: output.Metadata{
			InputDir:  inputDir,
			Sources:   files,
			StartedAt: start,
		},
	}

	groups, err := c.collect(ctx, files, &report.Summary)
	if err != nil {
		return nil, err
	}

	outDir, err := output.CreateOutputDir(c.fs, c.outputDir)
	if err != nil {
		return nil, err
	}
	report.Metadata.OutputDir = outDir
	c.log.Info("Output directory", "dir", outDir)

	for _, key := range groups.Keys() {
		result := c.writeGroup(outDir, key, groups.Records(key))
		if result.Failed() {
			report.Summary.GroupsFailed++
		} else {
			report.Summary.RecordsWritten += result.Records
		}
		report.Groups = append(report.Groups, result)
	}

	report.Metadata.Duration = c.now().Sub(start)
	return report, nil
}

// collect reads and classifies every line of files, in file order then line order.
func (c *Converter) collect(ctx context.Context, files []string, summary *output.Summary) (*Groups, error) {
	groups := NewGroups()
	source := parser.NewFileSource(c.fs, files)
	defer source.Close()

	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			var openErr *parser.OpenError
			if errors.As(err, &openErr) {
				c.log.Error("Could not open file", "file", openErr.Path, "err", openErr.Err)
				summary.FilesSkipped++
				continue
			}
			// Lines read before the failure are kept.
			var readErr *parser.ReadError
			if errors.As(err, &readErr) {
				c.log.Error("Could not finish reading file", "file", readErr.Path, "line", readErr.Line, "err", readErr.Err)
			} else {
				c.log.Error("Could not read file", "err", err)
			}
			summary.FilesTruncated++
			continue
		}

		rec := parser.Classify(line.Content)
		rec.File = filepath.Base(line.Source)
		c.log.Debug("Classified line", "file", rec.File, "line", line.LineNum, "pattern", rec.Pattern)

		groups.Add(parser.ExtractLogType(rec.File), rec)
		summary.LinesProcessed++
	}

	summary.FilesRead = len(files) - summary.FilesSkipped
	return groups, nil
}

// writeGroup writes one CSV. Failures are returned in the result, never as an error.
func (c *Converter) writeGroup(outDir, key string, records []parser.LogRecord) output.GroupResult {
	path := filepath.Join(outDir, key+".csv")
	result := output.GroupResult{LogType: key, Path: path}

	f, err := c.fs.Create(path)
	if err != nil {
		c.log.Error("Could not create output file", "file", path, "err", err)
		result.Error = err.Error()
		return result
	}

	w := output.NewCSVWriter(f)
	err = writeRecords(w, records)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		c.log.Error("Could not write output file", "file", path, "err", err)
		result.Error = err.Error()
		return result
	}

	result.Records = w.Rows()
	c.log.Debug("Wrote CSV", "file", path, "records", result.Records)
	return result
}

func writeRecords(w *output.CSVWriter, records []parser.LogRecord) error {
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}
