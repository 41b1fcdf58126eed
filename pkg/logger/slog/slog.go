// Package slog adapts log/slog to logger.Logger.
package slog

import (
	"io"
	"log/slog"

	"github.com/wdetools/sqlgen/pkg/logger"
)

// Logger sends logger.Logger calls to a *slog.Logger.
type Logger struct {
	sl *slog.Logger
}

var _ logger.Logger = (*Logger)(nil)

// New returns a Logger writing through h.
func New(h slog.Handler) *Logger {
	return &Logger{sl: slog.New(h)}
}

// NewJSON returns a Logger writing JSON lines at level and above to w.
func NewJSON(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// With returns a Logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{sl: l.sl.With(args...)}
}

func (l *Logger) Error(msg string, args ...any) { l.sl.Error(msg, args...) }

func (l *Logger) Warn(msg string, args ...any) { l.sl.Warn(msg, args...) }

func (l *Logger) Info(msg string, args ...any) { l.sl.Info(msg, args...) }

func (l *Logger) Debug(msg string, args ...any) { l.sl.Debug(msg, args...) }
