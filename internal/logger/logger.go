// Package logger provides the process-wide structured logger.
//
// The terminal UI owns stdout, so log records go to a file chosen by
// configuration. Until Init or Open is called everything is discarded.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// L is the global logger.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init installs a logger writing to w at the given level. format "json"
// selects the JSON handler, anything else the text handler.
func Init(level, format string, w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	L = slog.New(handler)
}

// Open appends to the log file at path and installs it. An empty path keeps
// logging disabled. The returned closer must be called on shutdown.
func Open(path, level string) (io.Closer, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		Init(level, "text", io.Discard)
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Init(level, "text", f)
	return f, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs at debug level with the global logger.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at info level with the global logger.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at warn level with the global logger.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at error level with the global logger.
func Error(msg string, args ...any) { L.Error(msg, args...) }
