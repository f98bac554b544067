package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"wordbag/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// Console receives human-facing output. Nil means os.Stderr.
	Console io.Writer
	// Color forces ANSI level colors on the console handler.
	Color bool
	// FilePath, when set, mirrors every record as JSON into an append-only
	// file. A file that cannot be opened is reported on the console and
	// skipped.
	FilePath string
}

// Logger bundles the slog logger with the resources it holds open.
type Logger struct {
	*slog.Logger
	closers []io.Closer
}

// Close releases any log files opened for the logger.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	var firstErr error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.closers = nil
	return firstErr
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*Logger, error) {
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(opts.Level))
	addSource := levelVar.Level() <= slog.LevelDebug

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}

	var primary slog.Handler
	switch format {
	case "json":
		primary = newJSONHandler(console, levelVar, addSource)
	case "console":
		primary = newConsoleHandler(console, levelVar, consoleOptions{addSource: addSource, color: opts.Color})
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	logger := &Logger{}
	handlers := []slog.Handler{primary}
	path := strings.TrimSpace(opts.FilePath)
	var fileErr error
	if path != "" {
		file, err := openLogFile(path)
		if err != nil {
			fileErr = err
		} else {
			logger.closers = append(logger.closers, file)
			handlers = append(handlers, newJSONHandler(file, levelVar, addSource))
		}
	}

	logger.Logger = slog.New(newFanoutHandler(handlers...))
	// The log file is a mirror of the console; losing it degrades to
	// console-only output.
	if fileErr != nil {
		logger.Warn("log file disabled", String("path", path), Error(fileErr))
	}
	return logger, nil
}

// OptionsFromConfig maps application config onto logger options. The
// console handler writes to stderr so stdout stays reserved for command
// output.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{Level: "info", Format: "console"}
	}
	opts := Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Color:  IsTerminal(os.Stderr),
	}
	if cfg.Logging.File {
		opts.FilePath = cfg.LogPath()
	}
	return opts
}

// NewFromConfig creates a logger using application config.
func NewFromConfig(cfg *config.Config) (*Logger, error) {
	return New(OptionsFromConfig(cfg))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure log directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return file, nil
}
