package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrUnknownMonth is returned for a month abbreviation outside Jan..Dec.
	ErrUnknownMonth = errors.New("unknown month abbreviation")

	// ErrMalformedTimestamp is returned when a numeric field cannot be read.
	ErrMalformedTimestamp = errors.New("malformed timestamp")
)

// months maps three-letter month abbreviations to two-digit month numbers.
var months = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
	"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
	"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// NormalizeTimestamp rewrites a timestamp into "MM/DD HH:MM:SS".
//
// Two spellings are accepted:
//   - "Mon D H:M:S" (first character is a letter), e.g. "Feb 14 2:20:11" -> "02/14 02:20:11"
//   - "MM/DD H:M:S", e.g. "02/19 1:5:1" -> "02/19 01:05:01"
//
// Only padding is applied. Day and time ranges are not validated and the
// date part of the second spelling is kept verbatim. Empty input is returned
// unchanged.
func NormalizeTimestamp(ts string) (string, error) {
	if ts == "" {
		return ts, nil
	}

	if isASCIILetter(ts[0]) {
		return normalizeMonthName(ts)
	}
	return normalizeNumericDate(ts)
}

func normalizeMonthName(ts string) (string, error) {
	fields := strings.Fields(ts)
	if len(fields) < 3 {
		return "", fmt.Errorf("%w: %q", ErrMalformedTimestamp, ts)
	}

	month, ok := months[fields[0]]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMonth, fields[0])
	}

	day, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", fmt.Errorf("%w: day %q", ErrMalformedTimestamp, fields[1])
	}

	clock, err := padClock(fields[2])
	if err != nil {
		return "", err
	}

	return month + "/" + twoDigit(day) + " " + clock, nil
}

func normalizeNumericDate(ts string) (string, error) {
	sep := strings.IndexFunc(ts, unicode.IsSpace)
	if sep < 0 {
		return ts, nil
	}

	date := ts[:sep]
	clock, err := padClock(strings.TrimLeftFunc(ts[sep:], unicode.IsSpace))
	if err != nil {
		return "", err
	}

	return date + " " + clock, nil
}

// padClock turns "H:M:S" into "HH:MM:SS".
func padClock(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: time %q", ErrMalformedTimestamp, s)
	}

	padded := make([]string, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", fmt.Errorf("%w: time %q", ErrMalformedTimestamp, s)
		}
		padded[i] = twoDigit(n)
	}

	return strings.Join(padded, ":"), nil
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func twoDigit(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
