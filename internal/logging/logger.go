package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/wire"
	"github.com/spf13/viper"
)

var LoggingSet = wire.NewSet(
	ProvideLogger,
)

// ProvideLogger creates the process logger from viper settings
func ProvideLogger(v *viper.Viper) *slog.Logger {
	return NewLogger(os.Stderr, v.GetBool("debug"))
}

// NewLogger creates a text logger. TOOLCFG_LOG_LEVEL picks the level;
// debug forces slog.LevelDebug.
func NewLogger(out io.Writer, debug bool) *slog.Logger {
	level := ParseLevel(os.Getenv("TOOLCFG_LOG_LEVEL"))
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Drop time for cleaner CLI output
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(out, opts))
}

// ParseLevel maps a level name to slog.Level, defaulting to info
func ParseLevel(val string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
