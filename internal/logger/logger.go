// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// state is the installed logger and its runtime-adjustable level.
type state struct {
	logger *slog.Logger
	base   slog.Handler // Unfiltered
	level  *slog.LevelVar
}

var (
	current  atomic.Pointer[state]
	initOnce sync.Once // Init and InitWithConfig only
	logFile  *os.File
)

func handlerOptions(level slog.Leveler) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
}

// Init initializes the logger package with a level and writer, without filtering.
func Init(level slog.Level, output io.Writer) {
	initOnce.Do(func() {
		install(level, output, nil)
	})
}

// InitWithConfig initializes the logger from a Config: it opens the log file
// ("" or "-" means stderr) and installs the tag/package/file filters.
func InitWithConfig(cfg Config) error {
	var initErr error
	initOnce.Do(func() {
		cfg.process()

		var output io.Writer = os.Stderr
		if cfg.LogFilePath != "" && cfg.LogFilePath != "-" {
			f, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				initErr = fmt.Errorf("failed to open log file '%s': %w", cfg.LogFilePath, err)
				output = io.Discard
			} else {
				logFile = f
				output = f
			}
		}
		install(ParseLevel(cfg.LogLevel), output, &cfg)
	})
	return initErr
}

func install(level slog.Level, output io.Writer, cfg *Config) {
	if output == nil {
		output = io.Discard
	}
	s := newState(level, output, cfg)
	current.Store(s)

	// PC=0: the init record carries no source location.
	r := slog.NewRecord(time.Now(), slog.LevelInfo, "Logger initialized", 0)
	r.AddAttrs(slog.String("level", level.String()))
	_ = s.base.Handle(context.Background(), r)
}

// Close releases the log file opened by InitWithConfig, if any.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func newState(level slog.Level, output io.Writer, cfg *Config) *state {
	lv := new(slog.LevelVar)
	lv.Set(level)

	base := slog.NewTextHandler(output, handlerOptions(lv))
	var handler slog.Handler = base
	if cfg != nil {
		handler = newFilteringHandler(base, cfg)
	}
	return &state{logger: slog.New(handler), base: base, level: lv}
}

// ensureInitialized returns the installed logger, falling back to a
// discarding one until Init or InitWithConfig runs. The fallback does not
// consume initOnce, so a later InitWithConfig still opens its log file.
func ensureInitialized() *state {
	if s := current.Load(); s != nil {
		return s
	}
	current.CompareAndSwap(nil, newState(slog.LevelInfo, io.Discard, nil))
	return current.Load()
}

// SetLevel changes the minimum level at runtime.
func SetLevel(level slog.Level) {
	ensureInitialized().level.Set(level)
}

// logAtLevel creates and logs a record, capturing the caller of the exported wrapper.
func logAtLevel(level slog.Level, tag string, format string, args ...interface{}) {
	log := ensureInitialized().logger
	if !log.Enabled(context.Background(), level) {
		return
	}

	// Skip runtime.Callers, logAtLevel and the exported wrapper.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = log.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, "", format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, "", format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, "", format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
}

// DebugTagf logs a debug message carrying a tag attribute used for filtering.
func DebugTagf(tag, format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, tag, format, args...)
}

// InfoTagf logs an info message carrying a tag attribute.
func InfoTagf(tag, format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, tag, format, args...)
}

// WarnTagf logs a warning message carrying a tag attribute.
func WarnTagf(tag, format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, tag, format, args...)
}

// Fatalf logs an error message then exits.
func Fatalf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
	_ = Close()
	os.Exit(1)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	return ensureInitialized().logger
}
