package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mrz1836/scribe/internal/config"
	"github.com/mrz1836/scribe/internal/logging"
)

// logFileWriter holds the log file writer for cleanup during shutdown.
var logFileWriter io.WriteCloser //nolint:gochecknoglobals // Needed for cleanup

// zerologGlobalMu protects concurrent writes to the zerolog global logger.
var zerologGlobalMu sync.Mutex //nolint:gochecknoglobals // Protects zerolog global

// InitLogger creates and configures a zerolog.Logger from the verbosity
// flags and the log section of the configuration.
//
// Flags win over config: verbose selects debug and quiet selects warn;
// otherwise logCfg.Level decides, defaulting to info when unset or
// unparseable. Output goes to a console writer on a TTY (unless NO_COLOR is
// set) and to JSON on stderr otherwise. When logCfg.File is set the logger
// also writes there with rotation per the config; an empty path disables the
// file sink. If the log file cannot be created, console-only logging
// continues.
func InitLogger(verbose, quiet bool, logCfg config.LogConfig) zerolog.Logger {
	level := selectLevel(verbose, quiet, logCfg.Level)
	console := selectOutput()

	var writer io.Writer = console
	if logCfg.File != "" {
		if fileWriter, err := createLogFileWriter(logCfg); err == nil {
			logFileWriter = fileWriter
			writer = zerolog.MultiLevelWriter(console, fileWriter)
		}
	}

	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	setGlobalLogger(logger)
	return logger
}

// InitLoggerWithWriter creates a logger with a custom writer, primarily for
// tests.
func InitLoggerWithWriter(verbose, quiet bool, w io.Writer) zerolog.Logger {
	level := selectLevel(verbose, quiet, "")
	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	setGlobalLogger(logger)
	return logger
}

// setGlobalLogger mirrors the CLI logger into the zerolog global so code
// using the github.com/rs/zerolog/log package gets the same formatting.
func setGlobalLogger(cliLogger zerolog.Logger) {
	zerologGlobalMu.Lock()
	defer zerologGlobalMu.Unlock()
	log.Logger = cliLogger
}

// CloseLogFile closes the global log file writer if it was opened.
// Called during application shutdown.
func CloseLogFile() {
	if logFileWriter != nil {
		_ = logFileWriter.Close()
		logFileWriter = nil
	}
}

// selectLevel determines the log level. Verbosity flags take precedence over
// the configured level.
func selectLevel(verbose, quiet bool, configured string) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	}

	if configured != "" {
		if level, err := zerolog.ParseLevel(configured); err == nil {
			return level
		}
	}
	return zerolog.InfoLevel
}

// selectOutput picks the console writer for a TTY without NO_COLOR, JSON on
// stderr otherwise.
func selectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}
	return os.Stderr
}

// filteringWriteCloser wraps a WriteCloser with sensitive data filtering.
type filteringWriteCloser struct {
	filter *logging.FilteringWriter
	closer io.Closer
}

func (fwc *filteringWriteCloser) Write(p []byte) (int, error) {
	return fwc.filter.Write(p)
}

func (fwc *filteringWriteCloser) Close() error {
	return fwc.closer.Close()
}

// createLogFileWriter creates the rotating, redacting file writer at the
// configured path.
func createLogFileWriter(logCfg config.LogConfig) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(logCfg.File), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   logCfg.File,
		MaxSize:    logCfg.MaxSizeMB,
		MaxBackups: logCfg.MaxBackups,
		MaxAge:     logCfg.MaxAgeDays,
		Compress:   true,
	}

	// Redact credentials before anything reaches disk
	return &filteringWriteCloser{
		filter: logging.NewFilteringWriter(lj),
		closer: lj,
	}, nil
}
