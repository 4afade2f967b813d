package logger

import (
	"bytes"
	"context"
	log "log/slog"
	"os"
	"path/filepath"
	"testing"

	"newsfeed/internal/api/config"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandlerAddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&ContextHandler{log.NewJSONHandler(&buf, nil)})

	l.InfoContext(WithTraceID(context.Background(), "t-1"), "hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "t-1", rec[TraceIDKey])
	assert.Equal(t, "hello", rec["msg"])
}

func TestTraceIDAbsent(t *testing.T) {
	assert.Empty(t, TraceID(context.Background()))
	assert.Empty(t, TraceID(context.WithValue(context.Background(), TraceIDKey, "plain")))
}

func TestTeeHandler(t *testing.T) {
	var a, b bytes.Buffer
	tee := &TeeHandler{handlers: []log.Handler{
		log.NewJSONHandler(&a, &log.HandlerOptions{Level: log.LevelInfo}),
		log.NewJSONHandler(&b, &log.HandlerOptions{Level: log.LevelError}),
	}}
	l := log.New(tee).With("svc", "newsfeed")

	l.Info("info only")
	l.Error("both")

	assert.Contains(t, a.String(), "info only")
	assert.Contains(t, a.String(), "both")
	assert.NotContains(t, b.String(), "info only")
	assert.Contains(t, b.String(), `"svc":"newsfeed"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, log.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, log.LevelError, ParseLevel("error"))
	assert.Equal(t, log.LevelInfo, ParseLevel(""))
}

func TestInitLoggerWithFile(t *testing.T) {
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "app.log")
	closer, err := InitLogger(config.LogConfig{Level: "info", Format: "text", File: path})
	require.NoError(t, err)

	log.InfoContext(WithTraceID(context.Background(), "file-trace"), "written")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"trace_id":"file-trace"`)
}
