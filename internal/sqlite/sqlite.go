// Package sqlite opens the embedded SQLite database backing the character
// store and applies its schema.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/charforge/internal/errors"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const pragmas = "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

// Open opens (creating if needed) the database at path and migrates it
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite: path is required")
	}

	db, err := sql.Open("sqlite", filepath.Clean(path)+pragmas)
	if err != nil {
		return nil, errors.Wrap(err, "sqlite: open failed")
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "sqlite: ping failed")
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return errors.Wrap(err, "sqlite: failed to create migrations table")
	}

	names, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return errors.Wrap(err, "sqlite: failed to list migrations")
	}
	sort.Strings(names)

	for _, name := range names {
		var applied int
		if err := db.QueryRowContext(ctx,
			`SELECT COUNT(1) FROM schema_migrations WHERE name = ?`, name).Scan(&applied); err != nil {
			return errors.Wrapf(err, "sqlite: failed to check migration %s", name)
		}
		if applied > 0 {
			continue
		}

		body, err := migrationFS.ReadFile(name)
		if err != nil {
			return errors.Wrapf(err, "sqlite: failed to read migration %s", name)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return errors.Wrap(err, "sqlite: failed to begin migration")
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "sqlite: migration %s failed", name)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (name) VALUES (?)`, name); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "sqlite: failed to record migration %s", name)
		}
		if err := tx.Commit(); err != nil {
			return errors.Wrapf(err, "sqlite: failed to commit migration %s", name)
		}
	}

	return nil
}
