package detector

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/ccollicutt/logcsv/pkg/parser"
)

func TestDetector_DetectFromLines_Syslog(t *testing.T) {
	lines := []string{
		"Jun 14 15:16:01 user.info app[1234]: Started",
		"Jun 14 15:16:02 user.info app[1234]: Processing",
		"Jun 14 15:16:03 user.err app[1234]: Done",
	}

	d := New()
	result := d.DetectFromLines(lines)

	if !result.HasMatch() {
		t.Fatal("Expected to detect a pattern")
	}

	best := result.BestMatch()
	if best.Kind != parser.PatternSyslog {
		t.Errorf("Expected %s, got %s", parser.PatternSyslog, best.Kind)
	}

	if best.MatchCount != 3 {
		t.Errorf("Expected 3 matches, got %d", best.MatchCount)
	}

	if best.Confidence != 1.0 {
		t.Errorf("Expected 100%% confidence, got %.1f%%", best.Confidence*100)
	}

	if best.Record.Timestamp != "06/14 15:16:01" {
		t.Errorf("Expected sample timestamp 06/14 15:16:01, got %q", best.Record.Timestamp)
	}
}

func TestDetector_DetectFromLines_BracketedTimestamp(t *testing.T) {
	lines := []string{
		"[02/19 01:15:01][CM][INFO][MSTC_MI]checkRecovery(338)enableRadio=1",
		"[02/19 01:15:02][CM][WARN]radio down",
	}

	result := New().DetectFromLines(lines)

	best := result.BestMatch()
	if best == nil {
		t.Fatal("Expected to detect a pattern")
	}
	if best.Kind != parser.PatternBracketedTimestamp {
		t.Errorf("Expected %s, got %s", parser.PatternBracketedTimestamp, best.Kind)
	}
	if best.SampleLine != lines[0] {
		t.Errorf("Expected first line as sample, got %q", best.SampleLine)
	}
}

func TestDetector_DetectFromLines_NoMatch(t *testing.T) {
	lines := []string{
		"No timestamp here",
		"Just some text",
		"More random content",
	}

	result := New().DetectFromLines(lines)

	if result.HasMatch() {
		t.Errorf("Expected no match, got %s", result.BestMatch().Kind)
	}

	if result.BestMatch() != nil {
		t.Error("Expected nil best match")
	}

	if len(result.Matches) != 1 || result.Matches[0].Kind != parser.PatternFallback {
		t.Fatalf("Expected a single fallback entry, got %+v", result.Matches)
	}

	if result.Coverage() != 0 {
		t.Errorf("Expected 0 coverage, got %.2f", result.Coverage())
	}
}

func TestDetector_DetectFromLines_EmptyInput(t *testing.T) {
	result := New().DetectFromLines([]string{})

	if result.HasMatch() {
		t.Error("Expected no match for empty input")
	}

	if result.SampledLines != 0 {
		t.Errorf("Expected 0 sampled lines, got %d", result.SampledLines)
	}

	if result.Coverage() != 0 {
		t.Errorf("Expected 0 coverage, got %.2f", result.Coverage())
	}
}

func TestDetector_DetectFromLines_MixedPatterns(t *testing.T) {
	lines := []string{
		"Feb 19 01:55:01 user.info zcmdModuleCfg: one",
		"Feb 19 01:55:02 user.info zcmdModuleCfg: two",
		"Feb 19 01:55:03 user.info zcmdModuleCfg: three",
		"[MMM][INFO]mtkGetCampSt(4652) DEBUG",
		"",
		"garbage",
	}

	result := New().DetectFromLines(lines)

	if result.SampledLines != 5 {
		t.Errorf("Expected blank line to be ignored, got %d sampled", result.SampledLines)
	}

	if result.StructuredLines != 4 {
		t.Errorf("Expected 4 structured lines, got %d", result.StructuredLines)
	}

	if got := result.Coverage(); got != 0.8 {
		t.Errorf("Expected coverage 0.80, got %.2f", got)
	}

	best := result.BestMatch()
	if best.Kind != parser.PatternSyslog {
		t.Errorf("Expected %s, got %s", parser.PatternSyslog, best.Kind)
	}

	if best.Confidence != 0.6 {
		t.Errorf("Expected confidence 0.60, got %.2f", best.Confidence)
	}
}

func TestDetector_DetectFromLines_TiesKeepTableOrder(t *testing.T) {
	lines := []string{
		"garbage",
		"Feb 19 01:55:01 user.info zcmdModuleCfg: one",
		"[MMM][INFO]two",
	}

	result := New().DetectFromLines(lines)

	want := []parser.PatternKind{
		parser.PatternBracketedTags,
		parser.PatternSyslog,
		parser.PatternFallback,
	}
	if len(result.Matches) != len(want) {
		t.Fatalf("Expected %d matches, got %d", len(want), len(result.Matches))
	}
	for i, kind := range want {
		if result.Matches[i].Kind != kind {
			t.Errorf("Match %d: expected %s, got %s", i, kind, result.Matches[i].Kind)
		}
	}
}

func TestDetector_WithSampleSize(t *testing.T) {
	d := New(WithSampleSize(50))
	if d.sampleSize != 50 {
		t.Errorf("Expected sample size 50, got %d", d.sampleSize)
	}
}

func TestDetector_WithSampleSize_Invalid(t *testing.T) {
	d := New(WithSampleSize(-1))
	if d.sampleSize != DefaultSampleSize {
		t.Errorf("Expected default sample size %d, got %d", DefaultSampleSize, d.sampleSize)
	}
}

func TestDetector_DetectFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "[INFO] [FOTA] Get CPE IMEI info Success.\r\n" +
		"\r\n" +
		"[INFO] [FOTA] Check version\r\n" +
		"[WARN] [FOTA] Retry\r\n"
	if err := afero.WriteFile(fs, "/logs/fota.log", []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	d := New(WithSampleSize(2))
	result, err := d.DetectFromFile(context.Background(), fs, "/logs/fota.log")
	if err != nil {
		t.Fatalf("DetectFromFile failed: %v", err)
	}

	if result.SampledLines != 2 {
		t.Errorf("Expected 2 sampled lines, got %d", result.SampledLines)
	}

	best := result.BestMatch()
	if best == nil || best.Kind != parser.PatternUppercaseTags {
		t.Fatalf("Expected %s, got %+v", parser.PatternUppercaseTags, best)
	}

	if best.Record.Message != "Get CPE IMEI info Success." {
		t.Errorf("Unexpected sample message %q", best.Record.Message)
	}
}

func TestDetector_DetectFromFile_LongLine(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := strings.Repeat("x", 2*1024*1024) + "\n[MMM][INFO]after\n"
	if err := afero.WriteFile(fs, "/logs/big.log", []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	result, err := New().DetectFromFile(context.Background(), fs, "/logs/big.log")
	if err != nil {
		t.Fatalf("DetectFromFile failed: %v", err)
	}

	if result.SampledLines != 2 {
		t.Errorf("Expected 2 sampled lines, got %d", result.SampledLines)
	}
	if best := result.BestMatch(); best == nil || best.Kind != parser.PatternBracketedTags {
		t.Errorf("Expected %s, got %+v", parser.PatternBracketedTags, best)
	}
}

func TestDetector_DetectFromFile_NotFound(t *testing.T) {
	_, err := New().DetectFromFile(context.Background(), afero.NewMemMapFs(), "/nonexistent/file.log")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestDetector_DetectFromFile_Cancelled(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/a.log", []byte("line\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New().DetectFromFile(ctx, fs, "/a.log"); err == nil {
		t.Error("Expected error for cancelled context")
	}
}
