package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"subsync/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; users then clear the ledger or delete the database file.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Event types recorded in the ledger.
const (
	EventSynced  = "synced"
	EventSkipped = "skipped"
	EventFailed  = "failed"
)

// Event is a single ledger entry.
type Event struct {
	ID            int64
	Path          string
	Directory     string
	EventType     string
	SubtitleCount int
	Detail        string
	CorrelationID string
	CreatedAt     time.Time
}

// Store manages the sync event ledger backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the ledger database at the configured path.
func Open(cfg *config.Config) (*Store, error) {
	dbPath := cfg.History.Path
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (run 'subsync history clear' or delete the database)",
			ErrSchemaMismatch, version, schemaVersion)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Record appends an event to the ledger. The created timestamp is assigned
// here; callers fill in the rest.
func (s *Store) Record(ctx context.Context, event Event) (*Event, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO sync_events (
            path, directory, event_type, subtitle_count, detail, correlation_id, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.Path,
		event.Directory,
		event.EventType,
		event.SubtitleCount,
		nullableString(event.Detail),
		nullableString(event.CorrelationID),
		now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(ctx, id)
}

// GetByID fetches an event by identifier. A missing event returns nil, nil.
func (s *Store) GetByID(ctx context.Context, id int64) (*Event, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM sync_events WHERE id = ?`, id)
	event, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// List returns the most recent events, newest first. A limit of zero or less
// returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]*Event, error) {
	query := `SELECT ` + eventColumns + ` FROM sync_events ORDER BY id DESC`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, query+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// ListByPath returns events for a specific file, newest first.
func (s *Store) ListByPath(ctx context.Context, path string) ([]*Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM sync_events WHERE path = ? ORDER BY id DESC`, path)
	if err != nil {
		return nil, fmt.Errorf("list events by path: %w", err)
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// Stats returns a count of events grouped by type.
func (s *Store) Stats(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT event_type, COUNT(1) FROM sync_events GROUP BY event_type`)
	if err != nil {
		return nil, fmt.Errorf("ledger stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var eventType string
		var count int
		if err := rows.Scan(&eventType, &count); err != nil {
			return nil, err
		}
		stats[eventType] = count
	}
	return stats, rows.Err()
}

// Clear removes all events from the ledger.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sync_events`)
	if err != nil {
		return 0, fmt.Errorf("clear ledger: %w", err)
	}
	return res.RowsAffected()
}

const eventColumns = "id, path, directory, event_type, subtitle_count, detail, correlation_id, created_at"

func scanEvent(scanner interface{ Scan(dest ...any) error }) (*Event, error) {
	var (
		id            int64
		path          string
		directory     string
		eventType     string
		subtitleCount int
		detail        sql.NullString
		correlationID sql.NullString
		createdRaw    string
	)
	if err := scanner.Scan(&id, &path, &directory, &eventType, &subtitleCount, &detail, &correlationID, &createdRaw); err != nil {
		return nil, err
	}

	event := &Event{
		ID:            id,
		Path:          path,
		Directory:     directory,
		EventType:     eventType,
		SubtitleCount: subtitleCount,
		Detail:        detail.String,
		CorrelationID: correlationID.String,
	}
	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		event.CreatedAt = created
	}
	return event, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
