// Package logging provides structured logging for hookrow using log/slog.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	log  *slog.Logger
	once sync.Once
)

// Options configures the logger.
type Options struct {
	// Verbose enables debug-level logging.
	Verbose bool
	// Output is the writer for log output (defaults to os.Stderr).
	Output io.Writer
	// File, if set, adds a rotating log file. The TUI uses this with a nil
	// Output so log lines never corrupt the alternate screen.
	File string
	// Quiet drops stderr output entirely (file-only logging).
	Quiet bool
}

// Init initializes the global logger. Safe to call multiple times; only the
// first call takes effect.
func Init(opts Options) {
	once.Do(func() {
		level := slog.LevelWarn
		if opts.Verbose {
			level = slog.LevelDebug
		}

		var writers []io.Writer
		if !opts.Quiet {
			out := opts.Output
			if out == nil {
				out = os.Stderr
			}
			writers = append(writers, out)
		}
		if opts.File != "" {
			writers = append(writers, &lumberjack.Logger{
				Filename:   opts.File,
				MaxSize:    5, // megabytes
				MaxBackups: 2,
				MaxAge:     14,
			})
		}

		var w io.Writer
		switch len(writers) {
		case 0:
			w = io.Discard
		case 1:
			w = writers[0]
		default:
			w = io.MultiWriter(writers...)
		}

		log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	})
}

// Reset resets the logger for testing purposes.
func Reset() {
	once = sync.Once{}
	log = nil
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	if log != nil {
		log.Debug(msg, args...)
	}
}

// Info logs at info level.
func Info(msg string, args ...any) {
	if log != nil {
		log.Info(msg, args...)
	}
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	if log != nil {
		log.Warn(msg, args...)
	}
}

// Error logs at error level.
func Error(msg string, args ...any) {
	if log != nil {
		log.Error(msg, args...)
	}
}
