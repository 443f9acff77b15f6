// Package sqlite provides the SQLite-backed submission history store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/uot-apps/withdrawal-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
	"github.com/uot-apps/withdrawal-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the port.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore records the client's own submissions in a local SQLite
// database.
type HistoryStore struct {
	db   *sql.DB
	path string
}

// NewHistoryStore opens (or creates) the history database in dataDir.
// If dataDir is empty, defaults to ~/.withdrawal/data.
func NewHistoryStore(dataDir string) (*HistoryStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".withdrawal", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL mode keeps the interactive TUI responsive during writes.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &HistoryStore{db: db, path: dbPath}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *HistoryStore) Path() string {
	return s.path
}

// Append stores one submission record.
func (s *HistoryStore) Append(ctx context.Context, record domain.SubmissionRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO submissions (id, request_id, course_code, course_name, eligible, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID, record.RequestID, record.CourseCode, record.CourseName,
		boolToInt(record.Eligible), record.SubmittedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	return nil
}

// List returns all stored records, newest first.
func (s *HistoryStore) List(ctx context.Context) ([]domain.SubmissionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, request_id, course_code, course_name, eligible, submitted_at
		FROM submissions
		ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying submissions: %w", err)
	}
	defer rows.Close()

	var records []domain.SubmissionRecord
	for rows.Next() {
		var (
			record      domain.SubmissionRecord
			eligible    int
			submittedAt string
		)
		if err := rows.Scan(&record.ID, &record.RequestID, &record.CourseCode,
			&record.CourseName, &eligible, &submittedAt); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		record.Eligible = eligible != 0
		if t, err := time.Parse(time.RFC3339, submittedAt); err == nil {
			record.SubmittedAt = t
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}
	return records, nil
}

// migrate applies all embedded schema migrations in order.
func (s *HistoryStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for i, name := range names {
		version := i + 1
		if version <= currentVersion {
			continue
		}

		contents, err := fs.ReadFile(migrations.FS, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(contents)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
