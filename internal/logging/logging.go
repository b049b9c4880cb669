// Package logging builds the process logger and holds canonical field names.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

const (
	KeySession = "session"
	KeyVariant = "variant"
	KeyKey     = "key"
	KeyTodoID  = "todo_id"
	KeyCount   = "count"
	KeyVersion = "version"
	KeyError   = "error"
)

func Session(id string) slog.Attr { return slog.String(KeySession, id) }
func Variant(v string) slog.Attr  { return slog.String(KeyVariant, v) }
func Key(k string) slog.Attr      { return slog.String(KeyKey, k) }
func TodoID(id int) slog.Attr     { return slog.Int(KeyTodoID, id) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }
func Version(v uint64) slog.Attr  { return slog.Uint64(KeyVersion, v) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// ParseLevel maps a config string to a level. Unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New returns a text logger writing to w, tagged with a fresh session id.
func New(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	return logger.With(Session(uuid.NewString()))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
