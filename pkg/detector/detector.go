// Package detector reports how well the line classifier covers a log file.
package detector

import (
	"bufio"
	"context"
	"io"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/ccollicutt/logcsv/pkg/parser"
)

// DefaultSampleSize is the number of lines sampled when no size is given.
const DefaultSampleSize = 100

// DetectionResult holds the result of classifying a sample of a log file.
type DetectionResult struct {
	Matches         []PatternMatch // Patterns that matched, sorted by count descending
	SampledLines    int            // Number of lines sampled
	StructuredLines int            // Number of lines matched by a non-fallback pattern
}

// PatternMatch summarizes the lines one pattern accepted.
type PatternMatch struct {
	Kind       parser.PatternKind
	Confidence float64          // 0.0 to 1.0 (share of sampled lines)
	MatchCount int              // Number of lines that matched
	SampleLine string           // First line that matched
	Record     parser.LogRecord // SampleLine as classified
}

// Detector samples log files and classifies the sample.
type Detector struct {
	rank       map[parser.PatternKind]int
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a new Detector.
func New(opts ...Option) *Detector {
	d := &Detector{
		rank:       make(map[parser.PatternKind]int),
		sampleSize: DefaultSampleSize,
	}
	for i, p := range parser.Patterns() {
		d.rank[p.Kind] = i
	}
	d.rank[parser.PatternFallback] = len(d.rank)

	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile samples the file at path and classifies the sample.
func (d *Detector) DetectFromFile(ctx context.Context, fsys afero.Fs, path string) (*DetectionResult, error) {
	lines, err := d.sampleFile(ctx, fsys, path)
	if err != nil {
		return nil, err
	}
	return d.DetectFromLines(lines), nil
}

// DetectFromLines classifies a slice of log lines. Blank lines are ignored.
func (d *Detector) DetectFromLines(lines []string) *DetectionResult {
	result := &DetectionResult{}

	stats := make(map[parser.PatternKind]*PatternMatch)
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		result.SampledLines++

		rec := parser.Classify(line)
		if rec.Pattern != parser.PatternFallback {
			result.StructuredLines++
		}

		m := stats[rec.Pattern]
		if m == nil {
			m = &PatternMatch{Kind: rec.Pattern, SampleLine: line, Record: rec}
			stats[rec.Pattern] = m
		}
		m.MatchCount++
	}

	for _, m := range stats {
		m.Confidence = float64(m.MatchCount) / float64(result.SampledLines)
		result.Matches = append(result.Matches, *m)
	}

	// Most frequent first; ties keep classifier order
	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].MatchCount != result.Matches[j].MatchCount {
			return result.Matches[i].MatchCount > result.Matches[j].MatchCount
		}
		return d.rank[result.Matches[i].Kind] < d.rank[result.Matches[j].Kind]
	})

	return result
}

// sampleFile reads up to sampleSize non-empty lines from a file.
func (d *Detector) sampleFile(ctx context.Context, fsys afero.Fs, path string) ([]string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	reader := bufio.NewReaderSize(file, 64*1024)

	for len(lines) < d.sampleSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := parser.ReadLine(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines, nil
}

// Coverage returns the share of sampled lines matched by a structured pattern.
func (r *DetectionResult) Coverage() float64 {
	if r.SampledLines == 0 {
		return 0
	}
	return float64(r.StructuredLines) / float64(r.SampledLines)
}

// BestMatch returns the most frequent structured pattern, or nil if none matched.
func (r *DetectionResult) BestMatch() *PatternMatch {
	for i := range r.Matches {
		if r.Matches[i].Kind != parser.PatternFallback {
			return &r.Matches[i]
		}
	}
	return nil
}

// HasMatch returns true if at least one line matched a structured pattern.
func (r *DetectionResult) HasMatch() bool {
	return r.StructuredLines > 0
}
