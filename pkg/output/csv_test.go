package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/logcsv/pkg/parser"
)

func TestEscapeCSV(t *testing.T) {
	t.Run("Should leave plain fields untouched", func(t *testing.T) {
		assert.Equal(t, "plain text", EscapeCSV("plain text"))
		assert.Equal(t, "", EscapeCSV(""))
	})

	t.Run("Should quote fields with commas", func(t *testing.T) {
		assert.Equal(t, `"a,b"`, EscapeCSV("a,b"))
	})

	t.Run("Should quote fields with newlines", func(t *testing.T) {
		assert.Equal(t, "\"a\nb\"", EscapeCSV("a\nb"))
	})

	t.Run("Should double embedded quotes and wrap", func(t *testing.T) {
		assert.Equal(t, `"say ""hi"""`, EscapeCSV(`say "hi"`))
	})

	t.Run("Should round trip through a CSV reader", func(t *testing.T) {
		original := "a,\"b\"\nc"
		escaped := EscapeCSV(original)
		assert.Equal(t, "\"a,\"\"b\"\"\nc\"", escaped)

		r := csv.NewReader(strings.NewReader(escaped + "\n"))
		record, err := r.Read()
		require.NoError(t, err)
		require.Len(t, record, 1)
		assert.Equal(t, original, record[0])
	})
}

func TestCSVWriter(t *testing.T) {
	t.Run("Should write header and rows in column order", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewCSVWriter(&buf)

		require.NoError(t, w.WriteHeader())
		require.NoError(t, w.Write(parser.LogRecord{
			Timestamp: "02/19 01:55:01",
			Source:    "zcmdModuleCfg",
			Level:     "user.info",
			Message:   "Enter function, Oid 154176",
			File:      "syslog.log",
		}))
		require.NoError(t, w.Write(parser.LogRecord{Message: "random garbage text", File: "syslog.log"}))
		require.NoError(t, w.Flush())

		want := "Timestamp,Source,Log Level,Message,File\n" +
			"02/19 01:55:01,zcmdModuleCfg,user.info,\"Enter function, Oid 154176\",syslog.log\n" +
			",,,random garbage text,syslog.log\n"
		assert.Equal(t, want, buf.String())
		assert.Equal(t, 2, w.Rows())
	})

	t.Run("Should produce output a CSV reader can parse", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewCSVWriter(&buf)
		rec := parser.LogRecord{Message: "multi\nline \"quoted\", text", File: "a.log"}

		require.NoError(t, w.WriteHeader())
		require.NoError(t, w.Write(rec))
		require.NoError(t, w.Flush())

		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"Timestamp", "Source", "Log Level", "Message", "File"}, rows[0])
		assert.Equal(t, rec.Message, rows[1][3])
	})
}
