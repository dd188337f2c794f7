package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"etsy-mock-api/internal/model"

	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required
)

// SQLiteRequestLogRepository implements RequestLogRepository using SQLite.
// The audit log is the one thing the mock keeps outside process memory, so
// that client traffic from a bot development session survives restarts.
// Entity state never goes here.
type SQLiteRequestLogRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteRequestLogRepository creates a new SQLite request log repository.
// dbPath is the path to the SQLite database file (e.g., "./data/requests.db"),
// or ":memory:" for tests.
func NewSQLiteRequestLogRepository(dbPath string) (*SQLiteRequestLogRepository, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}

	// SQLite only supports 1 writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := createRequestLogTable(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Printf("[SQLiteRequestLogRepository] Initialized with database: %s", dbPath)
	return &SQLiteRequestLogRepository{db: db}, nil
}

// createRequestLogTable creates the request log table.
func createRequestLogTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS api_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		request_id TEXT NOT NULL,
		method TEXT NOT NULL,
		path TEXT NOT NULL,
		status INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		remote_addr TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_api_requests_created_at ON api_requests(created_at);
	`
	_, err := db.Exec(query)
	return err
}

// Insert records one handled API call.
func (r *SQLiteRequestLogRepository) Insert(ctx context.Context, entry *model.RequestLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO api_requests (request_id, method, path, status, duration_ms, remote_addr, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		entry.RequestID, entry.Method, entry.Path, entry.Status, entry.DurationMs, entry.RemoteAddr, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert request log: %w", err)
	}
	return nil
}

// List returns entries newest-first plus the total count.
func (r *SQLiteRequestLogRepository) List(ctx context.Context, limit, offset int) ([]model.RequestLog, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := `
		SELECT id, request_id, method, path, status, duration_ms, remote_addr, created_at
		FROM api_requests
		ORDER BY id DESC
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query request log: %w", err)
	}
	defer rows.Close()

	entries := []model.RequestLog{}
	for rows.Next() {
		var e model.RequestLog
		if err := rows.Scan(&e.ID, &e.RequestID, &e.Method, &e.Path, &e.Status, &e.DurationMs, &e.RemoteAddr, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan request log row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM api_requests").Scan(&total); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// Close closes the database connection.
func (r *SQLiteRequestLogRepository) Close() error {
	return r.db.Close()
}

var _ RequestLogRepository = (*SQLiteRequestLogRepository)(nil)
