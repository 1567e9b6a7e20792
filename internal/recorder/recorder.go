package recorder

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Kind distinguishes recorded read queries from side-effecting actions, so
// replay can route each record through the matching mapper.
type Kind string

const (
	KindQuery  Kind = "query"
	KindAction Kind = "action"
)

// Record is one captured account API call.
type Record struct {
	ID           string
	Trace        string
	Seq          int64
	Kind         Kind
	Variant      string
	URL          string
	ResponseJSON string
	CreatedAt    time.Time
}

// Store provides durable storage for call traces.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db    *sql.DB
	clock *Clock
}

// Open creates or opens a SQLite trace database at the given path.
// Applies required pragmas and the schema automatically; safe to call on an
// existing database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open trace database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect trace database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent recording.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	// Resume the sequence clock past any existing records so reopening a
	// database never violates the (trace, seq) uniqueness constraint.
	var maxSeq int64
	if err := db.QueryRow(`SELECT COALESCE(MAX(seq), 0) FROM records`).Scan(&maxSeq); err != nil {
		db.Close()
		return nil, fmt.Errorf("read max seq: %w", err)
	}

	return &Store{db: db, clock: NewClockAt(maxSeq)}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends one call to a trace and returns the stored record. The
// record ID is a fresh UUID; the sequence comes from the store's clock and
// is monotonic across traces within this process.
func (s *Store) Record(ctx context.Context, trace string, kind Kind, variant, url, responseJSON string) (Record, error) {
	rec := Record{
		ID:           uuid.NewString(),
		Trace:        trace,
		Seq:          s.clock.Next(),
		Kind:         kind,
		Variant:      variant,
		URL:          url,
		ResponseJSON: responseJSON,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, trace, seq, kind, variant, url, response_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Trace, rec.Seq, string(rec.Kind), rec.Variant, rec.URL, rec.ResponseJSON,
		rec.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Record{}, fmt.Errorf("insert record: %w", err)
	}

	return rec, nil
}

// ReadTrace returns all records for a trace ordered by seq ASC, id ASC, so
// replay order is deterministic. Returns an empty slice (not nil) when the
// trace has no records.
func (s *Store) ReadTrace(ctx context.Context, trace string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, trace, seq, kind, variant, url, response_json, created_at
		FROM records
		WHERE trace = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, trace)
	if err != nil {
		return nil, fmt.Errorf("query trace: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		var kind, createdAt string
		if err := rows.Scan(&rec.ID, &rec.Trace, &rec.Seq, &kind, &rec.Variant,
			&rec.URL, &rec.ResponseJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Kind = Kind(kind)
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse record timestamp: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	return nil
}
