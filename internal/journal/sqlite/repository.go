// Package sqlite provides a SQLite-backed implementation of
// journal.Repository.
//
// WAL mode is enabled on Open so readers never block the writer: the session
// goroutine appends rows while a status query may be reading.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"turkeypos/internal/journal"

	// Pure-Go SQLite driver; no CGO needed for Alpine images.
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS checkout_journal (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Terminal session the attempt belongs to. Multiple rows per session.
    session_id     TEXT NOT NULL,

    -- SUBMITTED / COMPLETED / FAILED / REJECTED.
    status         TEXT NOT NULL,

    -- Table designator as submitted (takeout sentinel included).
    table_number   TEXT NOT NULL DEFAULT '',
    order_type     TEXT NOT NULL DEFAULT '',

    -- Upstream order id, set only on COMPLETED rows.
    order_id       TEXT NOT NULL DEFAULT '',

    error_message  TEXT NOT NULL DEFAULT '',

    -- W3C trace identifiers from the active OTel span.
    trace_id       TEXT NOT NULL DEFAULT '',
    span_id        TEXT NOT NULL DEFAULT '',

    -- RFC3339 stored as TEXT, SQLite idiom.
    created_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_checkout_journal_session
    ON checkout_journal(session_id, created_at);

CREATE INDEX IF NOT EXISTS idx_checkout_journal_trace
    ON checkout_journal(trace_id);
`

// Repository is the SQLite implementation of the journal's write and read
// ports.
type Repository struct {
	db *sql.DB
}

var (
	_ journal.Repository = (*Repository)(nil)
	_ journal.Reader     = (*Repository)(nil)
)

// Open opens (or creates) the journal database at path and applies the
// schema. A single writer connection is used; SQLite performs best that way.
func Open(path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error { return r.db.Close() }

// Save appends one journal row. Safe for concurrent use.
func (r *Repository) Save(ctx context.Context, entry *journal.Entry) error {
	const q = `
		INSERT INTO checkout_journal
			(session_id, status, table_number, order_type, order_id, error_message, trace_id, span_id, created_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		entry.SessionID,
		string(entry.Status),
		entry.TableNumber,
		entry.OrderType,
		entry.OrderID,
		entry.ErrorMessage,
		entry.TraceID,
		entry.SpanID,
		entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save journal entry for session %q: %w", entry.SessionID, err)
	}
	return nil
}

// Latest returns the most recent entry for a session, for status queries.
func (r *Repository) Latest(ctx context.Context, sessionID string) (*journal.Entry, error) {
	const q = `
		SELECT session_id, status, table_number, order_type, order_id,
		       error_message, trace_id, span_id, created_at
		FROM   checkout_journal
		WHERE  session_id = ?
		ORDER  BY created_at DESC, id DESC
		LIMIT  1`

	row := r.db.QueryRowContext(ctx, q, sessionID)

	var entry journal.Entry
	var status, createdAt string
	err := row.Scan(
		&entry.SessionID,
		&status,
		&entry.TableNumber,
		&entry.OrderType,
		&entry.OrderID,
		&entry.ErrorMessage,
		&entry.TraceID,
		&entry.SpanID,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sqlite: session %q: %w", sessionID, journal.ErrNoEntries)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: latest entry for %q: %w", sessionID, err)
	}

	entry.Status = journal.Status(status)
	entry.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("sqlite: parse time %q: %w", createdAt, err)
	}
	return &entry, nil
}
