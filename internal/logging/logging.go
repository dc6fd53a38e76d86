// Package logging builds the zerolog loggers shared by every component.
// Output is one JSON object per line with "ts", "level" and "msg" keys.
package logging

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

func init() {
	zerolog.TimestampFieldName = "ts"
	zerolog.MessageFieldName = "msg"
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// New returns a logger writing to w with timestamps rendered in loc.
func New(w io.Writer, loc *time.Location) zerolog.Logger {
	if loc == nil {
		loc = time.UTC
	}
	return zerolog.New(w).With().
		Timestamp().
		Logger().
		Hook(locationHook{loc: loc})
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// WithTrace adds the active trace id from ctx, if any.
func WithTrace(ctx context.Context, l zerolog.Logger) zerolog.Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return l
	}
	return l.With().Str("trace_id", sc.TraceID().String()).Logger()
}

// locationHook records the wall clock in the configured location next to the UTC timestamp.
type locationHook struct {
	loc *time.Location
}

func (h locationHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	if h.loc == time.UTC {
		return
	}
	e.Str("local_ts", time.Now().In(h.loc).Format(time.RFC3339Nano))
}
