package gesture

import (
	"io"
	"log/slog"
)

// discardLogger is the default logger of engines and hosts.
var discardLogger = slog.New(slog.DiscardHandler)

// NewDebugLogger returns a text logger at debug level writing to w, handy
// for tracing classification decisions while tuning thresholds:
//
//	eng := gesture.New(row, cfg, hooks, gesture.WithLogger(gesture.NewDebugLogger(os.Stderr)))
func NewDebugLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// LogValue lets slog print points compactly.
func (p Point) LogValue() slog.Value {
	return slog.StringValue(p.String())
}

// LogValue lets slog print intents by name.
func (i Intent) LogValue() slog.Value {
	return slog.StringValue(i.String())
}
