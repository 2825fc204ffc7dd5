package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"net-profiler/internal/models"

	_ "modernc.org/sqlite"
)

var (
	ErrCatalogEntryAlreadyExist = errors.New("catalog entry already exists")
	ErrCatalogEntryNotFound     = errors.New("catalog entry not found")
)

const catalogSchema = `
CREATE TABLE IF NOT EXISTS traces (
	trace_id       TEXT PRIMARY KEY,
	uploaded_at    TEXT NOT NULL,
	uploader_agent TEXT NOT NULL,
	token_count    INTEGER NOT NULL,
	name_count     INTEGER NOT NULL,
	summarized_at  TEXT
);
CREATE INDEX IF NOT EXISTS traces_uploaded_at ON traces (uploaded_at DESC);
`

// TraceCatalog indexes uploaded traces so they can be listed without opening every blob.
//
//go:generate mockgen -source=trace_catalog.go -destination=./mocks/trace_catalog_mock.go -package=mocks
type TraceCatalog interface {
	Register(ctx context.Context, entry *models.TraceCatalogEntry) error
	Get(ctx context.Context, traceID string) (*models.TraceCatalogEntry, error)
	Delete(ctx context.Context, traceID string) error
	// List returns up to limit entries, most recent upload first.
	List(ctx context.Context, limit int) ([]*models.TraceCatalogEntry, error)
	MarkSummarized(ctx context.Context, traceID string, at time.Time) error
	Close() error
}

type traceCatalog struct {
	db *sql.DB
}

// NewTraceCatalog opens (creating if needed) the SQLite catalog at path.
func NewTraceCatalog(ctx context.Context, path string) (TraceCatalog, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create catalog directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, catalogSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply catalog schema: %w", err)
	}
	return &traceCatalog{db: db}, nil
}

func (c *traceCatalog) Register(ctx context.Context, entry *models.TraceCatalogEntry) error {
	result, err := c.db.ExecContext(ctx,
		`INSERT INTO traces (trace_id, uploaded_at, uploader_agent, token_count, name_count)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (trace_id) DO NOTHING`,
		entry.TraceID, formatTime(entry.UploadedAt), entry.UploaderAgent, entry.TokenCount, entry.NameCount)
	if err != nil {
		return fmt.Errorf("failed to register trace: %w", err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to register trace: %w", err)
	}
	if inserted == 0 {
		return ErrCatalogEntryAlreadyExist
	}
	return nil
}

func (c *traceCatalog) Get(ctx context.Context, traceID string) (*models.TraceCatalogEntry, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT trace_id, uploaded_at, uploader_agent, token_count, name_count, summarized_at
		 FROM traces WHERE trace_id = ?`, traceID)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCatalogEntryNotFound
		}
		return nil, fmt.Errorf("failed to get trace: %w", err)
	}
	return entry, nil
}

func (c *traceCatalog) Delete(ctx context.Context, traceID string) error {
	result, err := c.db.ExecContext(ctx, `DELETE FROM traces WHERE trace_id = ?`, traceID)
	if err != nil {
		return fmt.Errorf("failed to delete trace: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete trace: %w", err)
	}
	if deleted == 0 {
		return ErrCatalogEntryNotFound
	}
	return nil
}

func (c *traceCatalog) List(ctx context.Context, limit int) ([]*models.TraceCatalogEntry, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT trace_id, uploaded_at, uploader_agent, token_count, name_count, summarized_at
		 FROM traces ORDER BY uploaded_at DESC, trace_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list traces: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.TraceCatalogEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trace: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list traces: %w", err)
	}
	return entries, nil
}

func (c *traceCatalog) MarkSummarized(ctx context.Context, traceID string, at time.Time) error {
	result, err := c.db.ExecContext(ctx, `UPDATE traces SET summarized_at = ? WHERE trace_id = ?`, formatTime(at), traceID)
	if err != nil {
		return fmt.Errorf("failed to mark trace summarized: %w", err)
	}
	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark trace summarized: %w", err)
	}
	if updated == 0 {
		return ErrCatalogEntryNotFound
	}
	return nil
}

func (c *traceCatalog) Close() error {
	return c.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.TraceCatalogEntry, error) {
	var (
		entry        models.TraceCatalogEntry
		uploadedAt   string
		summarizedAt sql.NullString
	)
	if err := row.Scan(&entry.TraceID, &uploadedAt, &entry.UploaderAgent, &entry.TokenCount, &entry.NameCount, &summarizedAt); err != nil {
		return nil, err
	}

	var err error
	if entry.UploadedAt, err = parseTime(uploadedAt); err != nil {
		return nil, err
	}
	if summarizedAt.Valid {
		at, err := parseTime(summarizedAt.String)
		if err != nil {
			return nil, err
		}
		entry.SummarizedAt = &at
	}
	return &entry, nil
}

// Times are stored as fixed-width UTC text so lexical order is chronological order.
const catalogTimeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(catalogTimeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(catalogTimeLayout, s)
}
