package journal

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// NewEntry builds a journal entry with trace identifiers extracted from the
// active span in ctx, if any. Contexts without a valid span (unit tests,
// tracing disabled) yield empty trace fields.
func NewEntry(ctx context.Context, sessionID string, status Status) *Entry {
	e := &Entry{
		SessionID: sessionID,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}

	sc := trace.SpanFromContext(ctx).SpanContext()
	if sc.IsValid() {
		e.TraceID = sc.TraceID().String()
		e.SpanID = sc.SpanID().String()
	}
	return e
}
