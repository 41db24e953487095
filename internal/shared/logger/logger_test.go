package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/campus-pulse/campuspulse/internal/shared/config"
)

func TestSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		wantSource bool
	}{
		{"info has no source", slog.LevelInfo, false},
		{"debug has no source", slog.LevelDebug, false},
		{"warn has source", slog.LevelWarn, true},
		{"error has source", slog.LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewSourceHandler(base, slog.LevelWarn))

			log.Log(context.Background(), tt.level, "comment resolved")

			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
		})
	}
}

func TestSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewSourceHandler(base, slog.LevelError)).
		With("course_code", "CS101").
		WithGroup("request")

	log.Info("student joined", "path", "/student/join")

	out := buf.String()
	assert.Contains(t, out, "course_code=CS101")
	assert.Contains(t, out, "request.path=/student/join")
	assert.NotContains(t, out, "source=")
}

func TestSourceHandler_Enabled(t *testing.T) {
	base := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})
	h := NewSourceHandler(base, slog.LevelError)

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestInterface_WithAndNamed(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithSlog(slog.New(slog.NewTextHandler(&buf, nil))).
		Named("handlers").
		With("course_id", 7)

	log.Infow("listing comments", "status", "open")

	out := buf.String()
	assert.Contains(t, out, "logger=handlers")
	assert.Contains(t, out, "course_id=7")
	assert.Contains(t, out, "status=open")
}

func TestSourceHandler_PointsAtCaller(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewSourceHandler(slog.NewTextHandler(&buf, nil), slog.LevelWarn))

	log.Warn("comment not found")

	assert.Contains(t, buf.String(), "logger_test.go")
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campuspulse.log")
	prev, prevOut := Logger, output
	t.Cleanup(func() {
		Logger, output = prev, prevOut
		slog.SetDefault(Get())
	})

	require.NoError(t, Init(&sharedConfig.LoggerConfig{Level: "info", Format: "json", OutputPath: path}))
	Info("course created", "code", "CS101")
	require.NoError(t, Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"code":"CS101"`)
	require.NoError(t, output.Close())
}

func TestInterface_SourceIsCallSite(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithSlog(slog.New(NewSourceHandler(slog.NewTextHandler(&buf, nil), slog.LevelWarn)))

	log.Warnw("course code already exists", "code", "CS101")

	out := buf.String()
	assert.Contains(t, out, "logger_test.go")
	assert.NotContains(t, out, "interface.go")
}

func TestInterface_FatalPanics(t *testing.T) {
	log := NewNop()
	assert.PanicsWithValue(t, "migration failed", func() { log.Fatal("migration failed") })
}
