package color

import (
	"log/slog"

	"github.com/gogpu/color/internal/logging"
)

// SetLogger configures the logger for color and all its sub-packages.
// By default, color produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Only [slog.LevelDebug] is used: lookup table construction, frame
// allocation and image scaling. Conversions never log.
//
// Example:
//
//	color.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by color.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
