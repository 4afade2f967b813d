package logger

import (
	"fmt"
	"io"
	log "log/slog"
	"os"
	"strings"

	"newsfeed/internal/api/config"
)

// LogWriter is where the gin access log goes; it mirrors the slog destination.
var LogWriter io.Writer = os.Stdout

// InitLogger installs the process-wide slog logger described by cfg.
// The returned closer releases the optional log file.
func InitLogger(cfg config.LogConfig) (io.Closer, error) {
	opts := &log.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var finalHandler log.Handler = newHandler(os.Stdout, cfg.Format, opts)
	LogWriter = os.Stdout

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		finalHandler = &TeeHandler{
			handlers: []log.Handler{finalHandler, log.NewJSONHandler(f, opts)},
		}
		LogWriter = io.MultiWriter(os.Stdout, f)
		closer = f
	}

	log.SetDefault(log.New(&ContextHandler{finalHandler}))
	return closer, nil
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

func newHandler(w io.Writer, format string, opts *log.HandlerOptions) log.Handler {
	if strings.EqualFold(format, "text") {
		return log.NewTextHandler(w, opts)
	}
	return log.NewJSONHandler(w, opts)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
