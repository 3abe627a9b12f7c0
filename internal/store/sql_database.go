package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/migrations"
)

// DB wraps a *sql.DB pool together with the driver-specific error classifier.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the board schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// MigrateJournal applies the print journal schema.
func (db *DB) MigrateJournal() error {
	return migrations.MigrateJournal(db.DB)
}

// Ping checks that at least one pooled connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// retryable reports whether err is worth retrying according to the
// configured classifier. Without a classifier nothing is retryable.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
