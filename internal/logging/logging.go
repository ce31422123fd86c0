// Package logging wraps charmbracelet/log with the conventions the rest
// of the codebase relies on. Everything goes to stderr so stdout stays
// clean for tool output and the MCP stdio transport.
package logging

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is the structured logger handed to subsystems.
type Logger struct {
	l *log.Logger
}

// New builds a stderr logger. Verbose lowers the level to debug;
// setting VANTAGE_DEBUG in the environment does the same.
func New(verbose bool) *Logger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter builds a logger on an arbitrary writer.
func NewWithWriter(w io.Writer, verbose bool) *Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "vantage",
	})
	if verbose || os.Getenv("VANTAGE_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return &Logger{l: logger}
}

func (lg *Logger) Debug(msg string, keyvals ...any) { lg.l.Debug(msg, keyvals...) }
func (lg *Logger) Info(msg string, keyvals ...any)  { lg.l.Info(msg, keyvals...) }
func (lg *Logger) Warn(msg string, keyvals ...any)  { lg.l.Warn(msg, keyvals...) }
func (lg *Logger) Error(msg string, keyvals ...any) { lg.l.Error(msg, keyvals...) }

// With returns a logger carrying extra key-value context.
func (lg *Logger) With(keyvals ...any) *Logger {
	return &Logger{l: lg.l.With(keyvals...)}
}

// NewTestLogger returns a debug-level logger backed by a buffer so
// tests can assert on emitted lines.
func NewTestLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false,
		Prefix:          "test",
	})
	logger.SetLevel(log.DebugLevel)
	return &Logger{l: logger}, &buf
}
