package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	pconstants "github.com/turbot/pipe-fittings/constants"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  slog.Leveler
	}{
		{name: "debug", level: "debug", want: slog.LevelDebug},
		{name: "mixed case", level: "Info", want: slog.LevelInfo},
		{name: "warn", level: "warn", want: slog.LevelWarn},
		{name: "error", level: "ERROR", want: slog.LevelError},
		{name: "off", level: "off", want: pconstants.LogLevelOff},
		{name: "unknown", level: "verbose", want: pconstants.LogLevelOff},
		{name: "empty", level: "", want: pconstants.LogLevelOff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.level))
		})
	}
}

func TestImporterLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := importerLogger(&buf, "info")

	logger.Debug("hidden")
	logger.Info("resolved path", "segments", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"resolved path"`)
	assert.Contains(t, out, `"source":"energy-import"`)
}

func TestImporterLogger_Off(t *testing.T) {
	var buf bytes.Buffer
	logger := importerLogger(&buf, "off")

	logger.Error("dropped")
	assert.Empty(t, buf.String())
}
