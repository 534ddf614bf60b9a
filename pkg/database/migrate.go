package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

type Migration struct {
	Version *semver.Version
	Name    string
	Up      string
}

const schemaVersionTable = `
CREATE TABLE IF NOT EXISTS schema_version (
    version VARCHAR(32) PRIMARY KEY,
    applied_at TIMESTAMP NOT NULL
)`

// LoadMigrations reads the embedded migrations, ordered by semantic version.
// File names follow "<semver>_<name>.sql".
func LoadMigrations() ([]Migration, error) {
	entries, err := fs.ReadDir(migrationFS, "migrations")
	if err != nil {
		return nil, err
	}

	migrations := make([]Migration, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		base := strings.TrimSuffix(e.Name(), ".sql")
		rawVersion, name, ok := strings.Cut(base, "_")
		if !ok {
			return nil, fmt.Errorf("migration %s: missing name", e.Name())
		}
		v, err := semver.NewVersion(rawVersion)
		if err != nil {
			return nil, fmt.Errorf("migration %s: %w", e.Name(), err)
		}
		body, err := migrationFS.ReadFile("migrations/" + e.Name())
		if err != nil {
			return nil, err
		}
		migrations = append(migrations, Migration{Version: v, Name: name, Up: string(body)})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version.LessThan(migrations[j].Version)
	})
	return migrations, nil
}

// Migrate applies every embedded migration newer than the recorded schema version.
// Each migration runs in its own transaction. It returns the versions applied.
func Migrate(ctx context.Context, db *sqlx.DB) ([]string, error) {
	if _, err := db.ExecContext(ctx, schemaVersionTable); err != nil {
		return nil, fmt.Errorf("failed to create schema_version: %w", err)
	}

	current, err := CurrentVersion(ctx, db)
	if err != nil {
		return nil, err
	}

	migrations, err := LoadMigrations()
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, m := range migrations {
		if current != nil && !m.Version.GreaterThan(current) {
			continue
		}
		if err := applyMigration(ctx, db, m); err != nil {
			return applied, fmt.Errorf("migration %s (%s) failed: %w", m.Version, m.Name, err)
		}
		applied = append(applied, m.Version.String())
	}
	return applied, nil
}

func applyMigration(ctx context.Context, db *sqlx.DB, m Migration) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.Up); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		tx.Rebind(`INSERT INTO schema_version (version, applied_at) VALUES (?, ?)`),
		m.Version.String(), time.Now().UTC()); err != nil {
		return err
	}
	return tx.Commit()
}

// CurrentVersion returns the highest applied version, or nil on a fresh database.
func CurrentVersion(ctx context.Context, db *sqlx.DB) (*semver.Version, error) {
	var versions []string
	if err := db.SelectContext(ctx, &versions, `SELECT version FROM schema_version`); err != nil {
		return nil, err
	}

	var current *semver.Version
	for _, raw := range versions {
		v, err := semver.NewVersion(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid recorded schema version %q: %w", raw, err)
		}
		if current == nil || v.GreaterThan(current) {
			current = v
		}
	}
	return current, nil
}
