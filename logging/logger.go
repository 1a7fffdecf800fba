package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/home-energy-audit/energy-import/constants"
	pconstants "github.com/turbot/pipe-fittings/constants"
	"github.com/turbot/pipe-fittings/sanitize"
)

// Initialize installs the importer logger as the slog default
// if level is empty, the level is read from the ENERGY_IMPORT_LOG_LEVEL env var
func Initialize(level string) {
	slog.SetDefault(importerLogger(os.Stderr, level))
}

// importerLogger returns a logger that writes JSON to w and sanitizes log entries
func importerLogger(w io.Writer, levelName string) *slog.Logger {
	if levelName == "" {
		levelName = os.Getenv(constants.EnvLogLevel)
	}
	level := ParseLevel(levelName)
	if level == pconstants.LogLevelOff {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	}

	handlerOptions := &slog.HandlerOptions{
		Level: level,

		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// credentials and tokens may end up in attribute values
			sanitized := sanitize.Instance.SanitizeKeyValue(a.Key, a.Value.Any())

			return slog.Attr{
				Key:   a.Key,
				Value: slog.AnyValue(sanitized),
			}
		},
	}
	return slog.New(slog.NewJSONHandler(w, handlerOptions)).With("source", constants.AppName)
}

// ParseLevel converts a level name to a slog level - unknown names turn logging off
func ParseLevel(levelName string) slog.Leveler {
	switch strings.ToLower(levelName) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "off":
		return pconstants.LogLevelOff
	default:
		return pconstants.LogLevelOff
	}
}
