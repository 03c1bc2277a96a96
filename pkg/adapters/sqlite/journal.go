// Package sqlite persists run records in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aretw0/cinta/pkg/machine"
)

// DefaultRecentLimit bounds Recent queries that pass a non-positive limit.
const DefaultRecentLimit = 20

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	machine     TEXT NOT NULL,
	fingerprint TEXT NOT NULL,
	input       TEXT NOT NULL,
	verdict     TEXT NOT NULL,
	steps       INTEGER NOT NULL,
	tape        TEXT NOT NULL,
	max_steps   INTEGER NOT NULL,
	created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_fingerprint ON runs (fingerprint);
`

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Journal provides SQLite-backed persistence for run records.
// It implements ports.RunJournal.
type Journal struct {
	sqlDB *sql.DB
}

// Open opens a SQLite journal at the provided path, creating missing parent
// directories, and applies the schema.
func Open(path string) (*Journal, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create journal directory: %w", err)
		}
	}
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply journal schema: %w", err)
	}

	return &Journal{sqlDB: sqlDB}, nil
}

// DB returns the underlying sql.DB instance.
func (j *Journal) DB() *sql.DB {
	if j == nil {
		return nil
	}
	return j.sqlDB
}

// Close closes the underlying SQLite database.
func (j *Journal) Close() error {
	if j == nil || j.sqlDB == nil {
		return nil
	}
	return j.sqlDB.Close()
}

// Record inserts one run record.
func (j *Journal) Record(ctx context.Context, rec machine.RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err := j.sqlDB.ExecContext(ctx, `INSERT INTO runs
		(machine, fingerprint, input, verdict, steps, tape, max_steps, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Machine,
		rec.Fingerprint,
		rec.Input,
		string(rec.Verdict),
		rec.Steps,
		rec.Tape,
		rec.MaxSteps,
		toMillis(created),
	)
	if err != nil {
		return fmt.Errorf("insert run record: %w", err)
	}
	return nil
}

// Recent returns the latest run records, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]machine.RunRecord, error) {
	return j.query(ctx, "", limit)
}

// RecentFor returns the latest run records for one table fingerprint,
// newest first.
func (j *Journal) RecentFor(ctx context.Context, fingerprint string, limit int) ([]machine.RunRecord, error) {
	return j.query(ctx, fingerprint, limit)
}

func (j *Journal) query(ctx context.Context, fingerprint string, limit int) ([]machine.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	query := `SELECT id, machine, fingerprint, input, verdict, steps, tape, max_steps, created_at
		FROM runs`
	args := []any{}
	if fingerprint != "" {
		query += ` WHERE fingerprint = ?`
		args = append(args, fingerprint)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := j.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query run records: %w", err)
	}
	defer rows.Close()

	var recs []machine.RunRecord
	for rows.Next() {
		var (
			rec       machine.RunRecord
			verdict   string
			createdAt int64
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.Machine,
			&rec.Fingerprint,
			&rec.Input,
			&verdict,
			&rec.Steps,
			&rec.Tape,
			&rec.MaxSteps,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan run record: %w", err)
		}
		rec.Verdict = machine.Verdict(verdict)
		rec.CreatedAt = fromMillis(createdAt)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run records: %w", err)
	}
	return recs, nil
}
