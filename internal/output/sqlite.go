package output

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const unitsSchema = `CREATE TABLE IF NOT EXISTS units (
	id         TEXT PRIMARY KEY,
	dest       TEXT NOT NULL,
	code       TEXT NOT NULL,
	size       INTEGER NOT NULL,
	created_at INTEGER NOT NULL
)`

// ErrNoUnit is returned by Latest when nothing was stored for a dest.
var ErrNoUnit = errors.New("no unit stored")

// SQLiteSink keeps every generated unit as a row, so earlier generations
// of the same dest stay available.
type SQLiteSink struct {
	db  *sql.DB
	log *slog.Logger
}

func OpenSQLite(ctx context.Context, path string, log *slog.Logger) (*SQLiteSink, error) {
	if log == nil {
		log = slog.Default()
	}
	if path == "" {
		path = ":memory:"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// one connection keeps ":memory:" databases alive across calls
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, unitsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create units table: %w", err)
	}
	return &SQLiteSink{db: db, log: log}, nil
}

func (s *SQLiteSink) Write(ctx context.Context, dest, code string) error {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO units (id, dest, code, size, created_at) VALUES (?, ?, ?, ?, ?)",
		id, dest, code, len(code), time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to store unit %s: %w", dest, err)
	}
	s.log.Info("stored unit", "id", id, "dest", dest, "size", humanize.Bytes(uint64(len(code))))
	return nil
}

// Latest returns the most recently stored code for dest.
func (s *SQLiteSink) Latest(ctx context.Context, dest string) (string, error) {
	var code string
	err := s.db.QueryRowContext(ctx,
		"SELECT code FROM units WHERE dest = ? ORDER BY created_at DESC, rowid DESC LIMIT 1", dest).Scan(&code)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w for %s", ErrNoUnit, dest)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read unit %s: %w", dest, err)
	}
	return code, nil
}

// Count returns how many units were stored for dest.
func (s *SQLiteSink) Count(ctx context.Context, dest string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM units WHERE dest = ?", dest).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count units: %w", err)
	}
	return n, nil
}

func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
