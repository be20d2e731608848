package parser

import "strings"

// logSuffix marks where the log-type part of a file name ends.
const logSuffix = ".log"

// ExtractLogType derives the grouping key for a file name.
//
// The name is lowercased, cut at the first ".log" and stripped of trailing
// digits, so "syslog.log", "syslog.log.1" and "SYSLOG.LOG.23" all yield
// "syslog". The result may be empty (e.g. for "123.log").
func ExtractLogType(fileName string) string {
	base := strings.ToLower(fileName)
	if i := strings.Index(base, logSuffix); i >= 0 {
		base = base[:i]
	}
	return strings.TrimRight(base, "0123456789")
}
