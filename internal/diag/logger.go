// internal/diag/logger.go
package diag

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// ParseLevel accepts debug|info|warn|error (case-insensitive). Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, Configf("invalid log level %q (want debug|info|warn|error)", s)
}

// NewLogger returns a text logger on w without timestamps. Every record
// carries a per-process run id so interleaved job logs can be told apart.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(h).With("run", NewRunID())
}

// Discard is a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// NewRunID returns a short random correlation id.
func NewRunID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}

var errTag = color.New(color.FgRed, color.Bold)

// PrintError writes "error: <err>" to w, tag coloured on terminals.
func PrintError(w io.Writer, err error) {
	if w == nil || err == nil {
		return
	}
	_, _ = errTag.Fprint(w, "error:")
	_, _ = fmt.Fprintf(w, " %v\n", err)
}
