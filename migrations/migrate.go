// Package migrations embeds the goose schema migrations of the board
// database (server/) and of the print station journal (client/).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql
var serverMigrations embed.FS

//go:embed client/*.sql
var clientMigrations embed.FS

// ErrNilDB is returned when a migration is requested without a connection.
var ErrNilDB = errors.New("db is nil")

// Migrate applies the board schema to a PostgreSQL database opened with the
// pgx driver.
func Migrate(db *sql.DB) error {
	return up(db, serverMigrations, "pgx", "server")
}

// MigrateJournal applies the print journal schema to a SQLite database.
func MigrateJournal(db *sql.DB) error {
	return up(db, clientMigrations, "sqlite3", "client")
}

func up(db *sql.DB, fsys embed.FS, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	goose.SetBaseFS(fsys)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
