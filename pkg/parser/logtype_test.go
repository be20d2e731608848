package parser

import "testing"

func TestExtractLogType(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"syslog.log", "syslog"},
		{"syslog.log.1", "syslog"},
		{"SYSLOG.LOG.23", "syslog"},
		{"kern2.log", "kern"},
		{"cm_log.txt", "cm_log.txt"},
		{"fota.txt", "fota.txt"},
		{"Messages", "messages"},
		{"boot12", "boot"},
		{"123.log", ""},
		{".log", ""},
		{"app.logger.log", "app"},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			if got := ExtractLogType(tt.fileName); got != tt.want {
				t.Errorf("ExtractLogType(%q) = %q, want %q", tt.fileName, got, tt.want)
			}
		})
	}
}
