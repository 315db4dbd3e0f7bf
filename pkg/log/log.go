// Package log configures log/slog handlers for the CLI and library.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
)

// NewWithCurrentConfig creates a [slog.Logger] by using current configuration.
func NewWithCurrentConfig() *slog.Logger {
	h, err := CreateHandler(os.Stderr, os.Getenv("LUAUGEN_LOG_LEVEL"), os.Getenv("LUAUGEN_LOG_FORMAT"))
	if err != nil {
		h, _ = CreateHandler(os.Stderr, "", TextFormat)
	}

	return slog.New(h)
}

// CreateHandler creates a [slog.Handler] writing to w with the given level
// and format.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level := GetLevel(logLevel)

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case LogfmtFormat:
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:     charmlog.Level(level),
			Formatter: charmlog.LogfmtFormatter,
		}), nil
	case TextFormat, "":
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level: charmlog.Level(level),
		}), nil
	default:
		return nil, fmt.Errorf("unknown log format '%s'", logFormat)
	}
}

func GetLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "panic":
		return slog.LevelError
	case "fatal":
		return slog.LevelError
	case "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "trace":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// SetLogFormat sets a log/slog format.
func SetLogFormat(logFormat string) {
	switch strings.ToLower(logFormat) {
	case JSONFormat:
		os.Setenv("LUAUGEN_LOG_FORMAT", JSONFormat)
	case LogfmtFormat:
		os.Setenv("LUAUGEN_LOG_FORMAT", LogfmtFormat)
	case TextFormat, "":
		os.Setenv("LUAUGEN_LOG_FORMAT", TextFormat)
	default:
		panic(fmt.Errorf("unknown log format '%s'", logFormat))
	}

	slog.SetDefault(NewWithCurrentConfig())
}

// SetLogLevel parses and sets a log/slog level.
func SetLogLevel(logLevel string) {
	level := GetLevel(logLevel)
	os.Setenv("LUAUGEN_LOG_LEVEL", level.String())
	slog.SetLogLoggerLevel(level)
}
