package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/campus-pulse/campuspulse/internal/infrastructure/config"
	sharedConfig "github.com/campus-pulse/campuspulse/internal/shared/config"
)

var (
	Logger *slog.Logger
	output *os.File
)

func Init(cfg *sharedConfig.LoggerConfig) error {
	level := ParseLevel(cfg.Level)

	writer, err := openWriter(cfg.OutputPath)
	if err != nil {
		return err
	}

	// warn and error carry source; debug mode shows it on every record
	sourceLevel := slog.LevelWarn
	if appCfg := config.Get(); appCfg != nil && appCfg.Server.Debug {
		sourceLevel = slog.LevelDebug
	}

	var base slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		base = slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level})
	} else {
		base = newTintHandler(writer, level)
	}

	Logger = slog.New(NewSourceHandler(base, sourceLevel))
	slog.SetDefault(Logger)

	return nil
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
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

func openWriter(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "stdout", "":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	output = f
	return f, nil
}

func newTintHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func Get() *slog.Logger {
	if Logger == nil {
		Logger = slog.New(NewSourceHandler(newTintHandler(os.Stdout, slog.LevelInfo), slog.LevelWarn))
		slog.SetDefault(Logger)
	}
	return Logger
}

func Debug(msg string, args ...any) {
	emit(Get(), slog.LevelDebug, msg, args)
}

func Info(msg string, args ...any) {
	emit(Get(), slog.LevelInfo, msg, args)
}

func Warn(msg string, args ...any) {
	emit(Get(), slog.LevelWarn, msg, args)
}

func Error(msg string, args ...any) {
	emit(Get(), slog.LevelError, msg, args)
}

// Sync flushes the log file, if logging goes to one.
func Sync() error {
	if output == nil {
		return nil
	}
	return output.Sync()
}
