// Package logging provides the structured logger used by the workspace. The
// terminal belongs to the UI, so records go to a file.
package logging

import (
	"context"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Logger is the narrow logging surface the workspace depends on.
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}

// SLogger adapts slog.Logger to Logger.
type SLogger struct {
	logger *slog.Logger
}

var _ Logger = (*SLogger)(nil)

// New wraps an existing slog.Logger.
func New(logger *slog.Logger) *SLogger {
	return &SLogger{logger: logger}
}

// NewWriter builds a JSON logger writing to w.
func NewWriter(w io.Writer) *SLogger {
	return New(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

// Open sends log records to path and returns a closer for the file. An empty
// path disables logging.
func Open(path string) (Logger, func() error, error) {
	if path == "" {
		return Nop{}, func() error { return nil }, nil
	}
	f, err := tea.LogToFile(path, "codescript")
	if err != nil {
		return nil, nil, err
	}
	return NewWriter(f), f.Close, nil
}

// Info logs an informational message.
func (l *SLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Log(ctx, slog.LevelInfo, msg, args...)
}

// Error logs an error message.
func (l *SLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Log(ctx, slog.LevelError, msg, args...)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Info(context.Context, string, ...any)  {}
func (Nop) Error(context.Context, string, ...any) {}
