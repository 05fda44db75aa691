package log

import (
	"context"
	"log/slog"

	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// SlogAdapter writes property events to an slog.Logger.
// Useful for development when you want to see property traffic in console.
type SlogAdapter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogAdapter creates an adapter that writes to logger at Debug level.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy of the adapter logging at level.
func (a *SlogAdapter) WithLevel(level slog.Level) *SlogAdapter {
	return &SlogAdapter{logger: a.logger, level: level}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("kind", event.Kind.String()),
		slog.String("source", event.Source.String()),
		slog.String("prop", vehicle.PropertyName(event.Prop)),
		slog.Int("area", int(event.AreaID)),
		slog.String("status", event.Status.String()),
	}

	if event.RequestID != 0 {
		attrs = append(attrs, slog.Int64("request_id", event.RequestID))
	}
	if event.Value != nil {
		attrs = append(attrs,
			slog.String("value", event.Value.Value.String()),
			slog.String("value_status", event.Value.Status.String()),
			slog.Int64("value_ts", event.Value.Timestamp),
		)
	}
	if event.Message != "" {
		attrs = append(attrs, slog.String("detail", event.Message))
	}

	a.logger.LogAttrs(context.Background(), a.level, "property", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
