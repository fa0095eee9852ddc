package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NoLogFile disables the log file in Options.
const NoLogFile = "-"

// Options controls where the global logger writes.
type Options struct {
	// Verbosity maps 0 to warn, 1 to info, 2 to debug and anything higher to trace.
	Verbosity int
	// Console receives human readable output. Nil means no console output.
	Console io.Writer
	// Plain writes JSON lines to Console instead of the pretty console format.
	Plain bool
	// LogFile is appended to as JSON lines. Empty means LogFilePath(); NoLogFile disables it.
	LogFile string
}

// Setup replaces the global logger. The returned func closes the log file, if one was opened.
func Setup(opts Options) func() {
	zerolog.SetGlobalLevel(levelFor(opts.Verbosity))

	var writers []io.Writer
	switch {
	case opts.Console == nil:
	case opts.Plain:
		writers = append(writers, opts.Console)
	default:
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        opts.Console,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		})
	}

	path := opts.LogFile
	if path == "" {
		path = LogFilePath()
	}
	var (
		file    *os.File
		fileErr error
	)
	if path != NoLogFile {
		if file, fileErr = openLogFile(path); fileErr == nil {
			writers = append(writers, file)
		}
	}

	logger := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		logger = logger.Caller()
	}
	log.Logger = logger.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Failed to create log file, logging to console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", path).Msg("Logger initialized")

	return func() {
		if file != nil {
			_ = file.Close()
		}
	}
}

// SetupLogger logs to stderr and the log file under the XDG state directory.
func SetupLogger(verbosity int) {
	Setup(Options{Verbosity: verbosity, Console: os.Stderr})
}

// SetupWriter points the global logger at w only, as JSON lines.
// Library hosts use it to route render warnings into their own sink.
func SetupWriter(w io.Writer, verbosity int) {
	Setup(Options{Verbosity: verbosity, Console: w, Plain: true, LogFile: NoLogFile})
}

// GetLogger returns a logger tagged with component.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// WithFields returns a logger with additional fields
func WithFields(fields map[string]interface{}) zerolog.Logger {
	return log.With().Fields(fields).Logger()
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}

// LogFilePath is $XDG_STATE_HOME/richtext/richtext.log, read at call time.
func LogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	return filepath.Join(stateHome, "richtext", "richtext.log")
}

func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}
