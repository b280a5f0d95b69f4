// Package logger provides a zap-based application logger that tags each
// entry with the service name and, when present, the trace id.
package logger

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity written.
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// TraceIDFn extracts a trace id from ctx, or "" if there is none.
type TraceIDFn func(ctx context.Context) string

// Logger writes structured JSON entries.
type Logger struct {
	sugar     *zap.SugaredLogger
	traceIDFn TraceIDFn
}

// New builds a logger writing JSON to w.
func New(w io.Writer, minLevel Level, service string, traceIDFn TraceIDFn) *Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(w), minLevel)

	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)).With(zap.String("service", service))
	return &Logger{sugar: l.Sugar(), traceIDFn: traceIDFn}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.write(ctx, LevelDebug, msg, args)
}

func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.write(ctx, LevelInfo, msg, args)
}

func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.write(ctx, LevelWarn, msg, args)
}

func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.write(ctx, LevelError, msg, args)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

func (l *Logger) write(ctx context.Context, lvl Level, msg string, args []any) {
	if l.traceIDFn != nil && ctx != nil {
		if id := l.traceIDFn(ctx); id != "" {
			args = append(args, "trace_id", id)
		}
	}
	switch lvl {
	case LevelDebug:
		l.sugar.Debugw(msg, args...)
	case LevelWarn:
		l.sugar.Warnw(msg, args...)
	case LevelError:
		l.sugar.Errorw(msg, args...)
	default:
		l.sugar.Infow(msg, args...)
	}
}
