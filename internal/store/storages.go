package store

import (
	"context"

	"github.com/MKhiriev/go-kudos-board/internal/config"
	"github.com/MKhiriev/go-kudos-board/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	MessageRepository MessageRepository

	db *DB
}

// NewStorages prepares the PostgreSQL pool and wires the repositories.
//
// Startup never aborts on the database. Without a DSN the returned Storages
// runs in degraded mode, where every repository call fails with
// [ErrDatabaseUnavailable]. With a DSN the pool is kept even when the first
// ping fails: calls fail with [ErrDatabaseUnavailable] until the database
// answers, then migrations run and the repository serves normally.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) *Storages {
	log.Info().Msg("creating new storages...")

	db, err := OpenPostgres(cfg.DB, log)
	if err != nil {
		log.Warn().Err(err).Str("func", "NewStorages").Msg("database unavailable, running in degraded mode")
		return &Storages{MessageRepository: NewUnavailableMessageRepository()}
	}

	repository := newRecoveringRepository(db, NewMessageRepository(db, log), db.Migrate, log)
	if err = repository.connect(ctx); err != nil {
		log.Warn().Err(err).Str("func", "NewStorages").Msg("database unreachable, retrying on demand")
	}

	return &Storages{
		MessageRepository: repository,
		db:                db,
	}
}

// Connected reports whether a database pool is configured.
func (s *Storages) Connected() bool {
	return s.db != nil
}

// Close releases the database pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
