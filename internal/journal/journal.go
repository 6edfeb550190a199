// Package journal defines the checkout journal: an append-only audit trail
// of every checkout attempt a terminal makes.
//
// Each attempt produces one or two rows (SUBMITTED followed by COMPLETED or
// FAILED; locally rejected attempts produce a single REJECTED row). The
// trace_id column lets an operator jump from a journal row straight to the
// distributed trace of the upstream call.
package journal

import "time"

// Status is the lifecycle state of one checkout attempt.
type Status string

const (
	// StatusSubmitted is written right before the order request leaves
	// the terminal.
	StatusSubmitted Status = "SUBMITTED"
	// StatusCompleted marks a successful order creation.
	StatusCompleted Status = "COMPLETED"
	// StatusFailed marks a transport or server failure; the cart was left
	// intact for retry.
	StatusFailed Status = "FAILED"
	// StatusRejected marks a local validation failure; no network call
	// was made.
	StatusRejected Status = "REJECTED"
)

// Entry is a single row in the checkout journal.
type Entry struct {
	// SessionID identifies the terminal session the attempt belongs to.
	SessionID string

	Status Status

	// TableNumber is the designator submitted (or the takeout sentinel).
	TableNumber string

	OrderType string

	// OrderID is the upstream order id, set only on COMPLETED rows.
	OrderID string

	// ErrorMessage carries the failure detail on FAILED and REJECTED rows.
	ErrorMessage string

	// TraceID / SpanID are the W3C identifiers of the OTel span active
	// when the row was written. Empty when no span is active.
	TraceID string
	SpanID  string

	CreatedAt time.Time
}
