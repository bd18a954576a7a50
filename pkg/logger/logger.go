package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"shelftalk/config"
)

// Logger wraps slog with the level/format picked from config.
// It is passed by value; the zero value logs to a discarding handler.
type Logger struct {
	log *slog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level := parseLevel(cfg.LoggerMode.Level)

	var handler slog.Handler
	if cfg.LoggerMode.Prod {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return &Logger{log: slog.New(handler)}, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l Logger) base() *slog.Logger {
	if l.log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l.log
}

func (l Logger) Debug(msg string, args ...any) { l.base().Debug(msg, args...) }
func (l Logger) Info(msg string, args ...any)  { l.base().Info(msg, args...) }
func (l Logger) Warn(msg string, args ...any)  { l.base().Warn(msg, args...) }
func (l Logger) Error(msg string, args ...any) { l.base().Error(msg, args...) }

func (l Logger) Errorf(format string, args ...any) {
	l.base().Error(fmt.Sprintf(format, args...))
}
