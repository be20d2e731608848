package parser

import "regexp"

// PatternKind identifies which classifier branch produced a LogRecord.
type PatternKind string

const (
	// PatternBracketedTimestamp matches "[02/19 01:15:01][CM][INFO]rest".
	PatternBracketedTimestamp PatternKind = "bracketed-timestamp"
	// PatternUppercaseTags matches "[INFO] [FOTA] rest".
	PatternUppercaseTags PatternKind = "uppercase-tags"
	// PatternBracketedTags matches "[MMM][INFO]rest".
	PatternBracketedTags PatternKind = "bracketed-tags"
	// PatternBracketedSyslog matches "[cellwan] Feb 14 02:20:11 user.notice DALCMD: rest".
	PatternBracketedSyslog PatternKind = "bracketed-syslog"
	// PatternSyslog matches "Feb 19 01:55:01 user.info zcmdModuleCfg: rest".
	PatternSyslog PatternKind = "syslog"
	// PatternTimestampOnly matches "[12/31 18:35:49]".
	PatternTimestampOnly PatternKind = "timestamp-only"
	// PatternFallback keeps the whole line as the message.
	PatternFallback PatternKind = "fallback"
)

// Pattern is one entry of the classification table.
type Pattern struct {
	Kind    PatternKind
	Regexp  *regexp.Regexp
	Example string

	// extract builds a record from the submatches. It reports false when the
	// line matched structurally but its fields cannot be used, in which case
	// classification moves on to the next pattern.
	extract func(m []string) (LogRecord, bool)
}

// patterns is evaluated top to bottom and the first usable match wins.
// Several entries overlap (all bracket-prefixed forms), so the order is part
// of the contract: uppercase-tags must precede bracketed-tags.
var patterns = []*Pattern{
	{
		Kind:    PatternBracketedTimestamp,
		Regexp:  regexp.MustCompile(`^\[([\d/]+\s+\d{1,2}:\d{1,2}:\d{1,2})\]\[([^\]]+)\]\[([^\]]+)\](.*)$`),
		Example: "[02/19 01:15:01][CM][INFO][MSTC_MI]checkRecovery(338)enableRadio=1",
		extract: func(m []string) (LogRecord, bool) {
			ts, err := NormalizeTimestamp(m[1])
			if err != nil {
				return LogRecord{}, false
			}
			return LogRecord{Timestamp: ts, Source: m[2], Level: m[3], Message: m[4]}, true
		},
	},
	{
		Kind:    PatternUppercaseTags,
		Regexp:  regexp.MustCompile(`^\s*\[([A-Z]+)\]\s*\[([A-Z]+)\]\s+(.*)$`),
		Example: "[INFO] [FOTA] Get CPE IMEI info Success.",
		extract: func(m []string) (LogRecord, bool) {
			return LogRecord{Level: m[1], Source: m[2], Message: m[3]}, true
		},
	},
	{
		Kind:    PatternBracketedTags,
		Regexp:  regexp.MustCompile(`^\[([^\]]+)\]\[([^\]]+)\]\s*(.*)$`),
		Example: "[MMM][INFO]mtkGetCampSt(4652) DEBUG: rilitem->rfChannel.campOnStatus:1",
		extract: func(m []string) (LogRecord, bool) {
			return LogRecord{Source: m[1], Level: m[2], Message: m[3]}, true
		},
	},
	{
		Kind:    PatternBracketedSyslog,
		Regexp:  regexp.MustCompile(`^\[([^\]]+)\]\s+([A-Z][a-z]{2}\s+\d+\s+\d{1,2}:\d{1,2}:\d{1,2})\s+(\S+)\s+(\S+):\s*(.*)$`),
		Example: "[cellwan] Feb 14 02:20:11 user.notice DALCMD: Attached to schema shared memory",
		extract: func(m []string) (LogRecord, bool) {
			ts, err := NormalizeTimestamp(m[2])
			if err != nil {
				return LogRecord{}, false
			}
			msg := m[4]
			if m[5] != "" {
				msg += " " + m[5]
			}
			return LogRecord{Timestamp: ts, Source: m[1], Level: m[3], Message: msg}, true
		},
	},
	{
		Kind:    PatternSyslog,
		Regexp:  regexp.MustCompile(`^([A-Z][a-z]{2}\s+\d+\s+\d{1,2}:\d{1,2}:\d{1,2})\s+(\S+)\s+(\S+):\s*(.*)$`),
		Example: "Feb 19 01:55:01 user.info zcmdModuleCfg: Enter function zcmdReqObjGet Oid 154176",
		extract: func(m []string) (LogRecord, bool) {
			ts, err := NormalizeTimestamp(m[1])
			if err != nil {
				return LogRecord{}, false
			}
			return LogRecord{Timestamp: ts, Level: m[2], Source: m[3], Message: m[4]}, true
		},
	},
	{
		Kind:    PatternTimestampOnly,
		Regexp:  regexp.MustCompile(`^\[([\d/]+\s+\d{1,2}:\d{1,2}:\d{1,2})\]$`),
		Example: "[12/31 18:35:49]",
		extract: func(m []string) (LogRecord, bool) {
			ts, err := NormalizeTimestamp(m[1])
			if err != nil {
				return LogRecord{}, false
			}
			return LogRecord{Timestamp: ts}, true
		},
	},
}

// Patterns returns the classification table in evaluation order.
// The fallback is implicit and not part of the table.
func Patterns() []*Pattern {
	out := make([]*Pattern, len(patterns))
	copy(out, patterns)
	return out
}

// Classify turns a raw line into a LogRecord. It never fails: a line that no
// pattern accepts becomes a fallback record carrying the whole line as its
// message.
func Classify(line string) LogRecord {
	for _, p := range patterns {
		m := p.Regexp.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rec, ok := p.extract(m)
		if !ok {
			continue
		}
		rec.Pattern = p.Kind
		return rec
	}

	return LogRecord{Message: line, Pattern: PatternFallback}
}
