// Package logging builds the charmbracelet/log logger verto writes to and
// tails its log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/JaskiratSingh1/Verto/internal/appdir"
	"github.com/JaskiratSingh1/Verto/internal/config"
)

// Prefix is attached to every log line.
const Prefix = "verto"

// Options holds configuration for a logger.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	ReportCaller    bool
	Prefix          string
}

// DefaultOptions returns default logger options.
func DefaultOptions() Options {
	return Options{
		Level:           log.InfoLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		ReportCaller:    false,
		Prefix:          Prefix,
	}
}

// OptionsFromConfig converts the string settings from config into Options.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	opts.Level = ParseLevel(cfg.LogLevel)
	opts.Formatter = ParseFormatter(cfg.LogFormat)
	opts.ReportTimestamp = cfg.LogTimestamps
	opts.ReportCaller = cfg.LogCaller
	return opts
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		ReportCaller:    opts.ReportCaller,
		Prefix:          opts.Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Open creates the logger described by cfg. Unless cfg sends logs to stderr,
// the log file is created (with its directory) and opened for appending; the
// returned closer closes it.
func Open(cfg *config.Config) (*log.Logger, io.Closer, error) {
	opts := OptionsFromConfig(cfg)
	if cfg.LogToStderr() {
		return New(os.Stderr, opts), nopCloser{}, nil
	}
	if cfg.LogFile == "" {
		return Discard(), nopCloser{}, nil
	}

	if err := appdir.Ensure(filepath.Dir(cfg.LogFile)); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, opts), f, nil
}

// ParseLevel parses a string log level to a charmbracelet/log Level.
// Unknown values map to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a string formatter name to a charmbracelet/log Formatter.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
