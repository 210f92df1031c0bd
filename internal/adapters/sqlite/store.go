package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"resourcedex/internal/config"
	"resourcedex/internal/domain"
	"resourcedex/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// ErrNotOpen is returned when the store is used before Open
var ErrNotOpen = errors.New("snapshot store is not open")

// Store implements ports.DatasetStore using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
	logger *zap.Logger
}

// Ensure Store implements DatasetStore
var _ ports.DatasetStore = (*Store)(nil)

// NewStore creates a new SQLite snapshot store
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger}
}

// DefaultPath returns the snapshot database path under the XDG data directory
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "resourcedex", "resources.db")
}

// Open initializes the database at path, creating it if needed
func (s *Store) Open(path string) error {
	path = config.ExpandHome(path)
	if path == "" {
		path = DefaultPath()
	}
	s.dbPath = path

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Pragmas + schema in single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS records (
			position INTEGER PRIMARY KEY,
			category TEXT NOT NULL,
			subcategory TEXT NOT NULL,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			cost TEXT NOT NULL,
			description TEXT NOT NULL,
			url TEXT NOT NULL,
			skill_level TEXT NOT NULL,
			priority TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		s.db = nil
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		s.db = nil
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// Describe returns the database path
func (s *Store) Describe() string {
	return s.dbPath
}

// Load returns the snapshot records in their original order
func (s *Store) Load(ctx context.Context) ([]domain.Record, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, subcategory, name, type, cost, description, url, skill_level, priority
		FROM records ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		var r domain.Record
		if err := rows.Scan(&r.Category, &r.Subcategory, &r.Name, &r.Type, &r.Cost,
			&r.Description, &r.URL, &r.SkillLevel, &r.Priority); err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// Import replaces the snapshot with records in a single transaction
func (s *Store) Import(ctx context.Context, source string, records []domain.Record) (*domain.ImportStats, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}

	start := time.Now()
	stats := &domain.ImportStats{RecordsRead: len(records)}

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, err
	}

	replaced, err := tx.clear()
	if err != nil {
		tx.rollback()
		return nil, err
	}
	stats.RecordsReplaced = replaced

	for i, r := range records {
		if err := tx.insertRecord(i, r); err != nil {
			tx.rollback()
			return nil, fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	if err := tx.setMeta("source", source); err != nil {
		tx.rollback()
		return nil, err
	}
	if err := tx.setMeta("imported_at", strconv.FormatInt(time.Now().Unix(), 10)); err != nil {
		tx.rollback()
		return nil, err
	}

	if err := tx.commit(); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)
	s.logger.Info("snapshot imported",
		zap.String("source", source),
		zap.String("db", s.dbPath),
		zap.Int("records", stats.RecordsRead),
		zap.Duration("duration", stats.Duration),
	)
	return stats, nil
}

// Info describes the current snapshot, nil when nothing was imported yet
func (s *Store) Info(ctx context.Context) (*domain.SnapshotInfo, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}

	var source, importedAt string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'source'`).Scan(&source)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'imported_at'`).Scan(&importedAt); err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	info := &domain.SnapshotInfo{Source: source}
	if unix, err := strconv.ParseInt(importedAt, 10, 64); err == nil {
		info.ImportedAt = time.Unix(unix, 0)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&info.Records); err != nil {
		return nil, err
	}
	return info, nil
}
