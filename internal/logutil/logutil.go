// internal/logutil/logutil.go
package logutil

import (
	"io"
	"log/slog"
)

// New returns a structured text logger writing to w. verbose lowers the
// threshold to debug, quiet raises it so only errors surface; verbose wins
// when both are set.
func New(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
