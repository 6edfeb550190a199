package journal

import (
	"context"
	"errors"
)

// ErrNoEntries is returned by Reader.Latest when a session has no recorded
// checkout attempts.
var ErrNoEntries = errors.New("no journal entries")

// Repository is the port for persisting journal entries. The session core
// depends on this abstraction, not on SQLite directly, so tests can use an
// in-memory implementation.
type Repository interface {
	// Save appends one row. The journal is append-only, never upserted.
	Save(ctx context.Context, entry *Entry) error
}

// Reader is the query side of the journal, serving checkout status lookups.
type Reader interface {
	// Latest returns the most recent entry for a session, or an error
	// wrapping ErrNoEntries when there is none.
	Latest(ctx context.Context, sessionID string) (*Entry, error)
}
