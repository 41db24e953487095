package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// Interface is the logger handed to use cases, handlers and middleware.
// The w-suffixed methods take alternating key/value pairs; they exist so
// call sites read the same whichever style the author prefers.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Fatalw(msg string, keysAndValues ...interface{})
}

type slogLogger struct {
	logger *slog.Logger
}

func NewLogger() Interface {
	return NewLoggerWithSlog(Get())
}

// NewNop returns a logger that drops every record.
func NewNop() Interface {
	return NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

func NewLoggerWithSlog(l *slog.Logger) Interface {
	return &slogLogger{logger: l}
}

// emit logs with the caller of the exported method as the record PC, so the
// source handler reports the call site instead of this file.
func emit(l *slog.Logger, level slog.Level, msg string, args []any) {
	ctx := context.Background()
	if !l.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // runtime.Callers, emit, exported method
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.Handler().Handle(ctx, r)
}

func (l *slogLogger) Debug(msg string, args ...any) { emit(l.logger, slog.LevelDebug, msg, args) }
func (l *slogLogger) Info(msg string, args ...any)  { emit(l.logger, slog.LevelInfo, msg, args) }
func (l *slogLogger) Warn(msg string, args ...any)  { emit(l.logger, slog.LevelWarn, msg, args) }
func (l *slogLogger) Error(msg string, args ...any) { emit(l.logger, slog.LevelError, msg, args) }

// Fatal logs at error level and panics, so deferred cleanup still runs.
func (l *slogLogger) Fatal(msg string, args ...any) {
	emit(l.logger, slog.LevelError, msg, args)
	panic(msg)
}

func (l *slogLogger) Debugw(msg string, kv ...interface{}) { emit(l.logger, slog.LevelDebug, msg, kv) }
func (l *slogLogger) Infow(msg string, kv ...interface{})  { emit(l.logger, slog.LevelInfo, msg, kv) }
func (l *slogLogger) Warnw(msg string, kv ...interface{})  { emit(l.logger, slog.LevelWarn, msg, kv) }
func (l *slogLogger) Errorw(msg string, kv ...interface{}) { emit(l.logger, slog.LevelError, msg, kv) }

func (l *slogLogger) Fatalw(msg string, kv ...interface{}) {
	emit(l.logger, slog.LevelError, msg, kv)
	panic(msg)
}

func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Named tags records with the component that produced them.
func (l *slogLogger) Named(name string) Interface {
	return &slogLogger{logger: l.logger.With("logger", name)}
}
