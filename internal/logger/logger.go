// Package logger provides a structured, module-aware logging system built on Go's standard log/slog.
//
// # Quick Start
//
//	cfg := &logger.LoggingConfig{
//	    DefaultLevel: "info",
//	    Format:       "text",
//	}
//
//	centralLogger, err := logger.NewCentralLogger(cfg, os.Stderr)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logger.SetGlobal(centralLogger)
//
//	// Create module-scoped logger
//	indexLogger := centralLogger.Module("birdgroups")
//	indexLogger.Debug("Reverse index built",
//	    logger.Int("groups", 15),
//	    logger.Int("species", 92))
//
// # Module Scoping
//
// Module loggers nest with a dot separator:
//
//	cliLogger := centralLogger.Module("cli")
//	cliLogger.Module("summary").Info("Done")  // module="cli.summary"
//
// Packages keep their own module logger behind a sync.Once, see
// birdgroups.GetLogger for an example.
//
// # Testing
//
// Write to a buffer to inspect output:
//
//	buf := &bytes.Buffer{}
//	cl, _ := logger.NewCentralLogger(&logger.LoggingConfig{DefaultLevel: "debug", Format: "json"}, buf)
package logger

import (
	"context"
	"time"
	"unique"
)

// LogLevel represents log severity levels
type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Field represents a structured log field.
// Keys are interned using unique.Make() so repeated keys share one allocation.
type Field struct {
	Key   string
	Value any
}

func internKey(key string) string {
	return unique.Make(key).Value()
}

var (
	errorKey   = internKey("error")
	moduleKey  = internKey("module")
	traceIDKey = internKey("trace_id")
)

// Logger is the centralized logging interface for dependency injection
type Logger interface {
	// Module returns a logger scoped to a specific module
	Module(name string) Logger

	Trace(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	With(fields ...Field) Logger
	WithContext(ctx context.Context) Logger

	// Log with explicit level
	Log(level LogLevel, msg string, fields ...Field)
}

// String creates a string field for structured logging.
//
// Example:
//
//	log.Info("Species classified",
//	    logger.String("species", "Mallard"),
//	    logger.String("group", "Dabbling Ducks"))
func String(key, value string) Field {
	return Field{Key: internKey(key), Value: value}
}

// Int creates an integer field for structured logging.
func Int(key string, value int) Field {
	return Field{Key: internKey(key), Value: value}
}

// Bool creates a boolean field for structured logging.
func Bool(key string, value bool) Field {
	return Field{Key: internKey(key), Value: value}
}

// Error creates an error field for structured logging.
//
// The field key is always "error". If err is nil, the value will be nil.
func Error(err error) Field {
	if err == nil {
		return Field{Key: errorKey, Value: nil}
	}
	return Field{Key: errorKey, Value: err.Error()}
}

// Duration creates a duration field; the value is rendered like "1.5s".
func Duration(key string, value time.Duration) Field {
	return Field{Key: internKey(key), Value: value}
}

// Any creates a field with any value for structured logging.
// Prefer the type-specific constructors for simple values.
func Any(key string, value any) Field {
	return Field{Key: internKey(key), Value: value}
}
