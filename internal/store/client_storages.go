package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kudos-board/internal/config"
	"github.com/MKhiriev/go-kudos-board/internal/logger"
)

// ClientStorages groups the print station's local storage.
type ClientStorages struct {
	// PrintJournal is the SQLite-backed record of the cursor and printed ids.
	PrintJournal PrintJournal

	db *DB
}

// NewClientStorages initialises the print station storage layer:
//  1. Opens an SQLite connection to cfg.DSN, creating the file if needed.
//  2. Runs pending journal migrations via [DB.MigrateJournal].
//  3. Wires a [PrintJournal] on top of it.
func NewClientStorages(ctx context.Context, cfg config.PrinterJournal, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateJournal(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		PrintJournal: NewPrintJournal(db, logger),
		db:           db,
	}, nil
}

// Close releases the SQLite connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
