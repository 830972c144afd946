// Package indexlog is the run's structured logger. It keeps the teacher's
// Logger shape (Info/Warn/Error/Debug, a Field type for structured
// key/value pairs, a silent constructor for tests) but backs it with
// go.uber.org/zap instead of hand-rolled *log.Logger instances, per
// SPEC_FULL.md's ambient-stack upgrade.
package indexlog

import "go.uber.org/zap"

// Field is a structured logging key/value pair.
type Field = zap.Field

// String, Int, and Err mirror the zap constructors callers reach for most.
var (
	String = zap.String
	Int    = zap.Int
	Err    = zap.Error
)

// Logger wraps a *zap.Logger behind the same four-level surface the
// teacher's hand-rolled logger exposed.
type Logger struct {
	z *zap.Logger
}

// New builds a production-configured logger. verbose lowers the level to
// debug; otherwise info and above are emitted.
func New(verbose bool) *Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	z, err := cfg.Build()
	if err != nil {
		z = zap.NewNop()
	}
	return &Logger{z: z}
}

// NewSilent discards all output; used in tests the way NewSilentLogger was.
func NewSilent() *Logger {
	return &Logger{z: zap.NewNop()}
}

func (l *Logger) Info(msg string, fields ...Field)  { l.z.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.z.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.z.Error(msg, fields...) }
func (l *Logger) Debug(msg string, fields ...Field) { l.z.Debug(msg, fields...) }

// Sync flushes any buffered log entries; call once before process exit.
func (l *Logger) Sync() error { return l.z.Sync() }

// With returns a child logger carrying fields on every subsequent call.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{z: l.z.With(fields...)}
}
