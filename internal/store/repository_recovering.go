package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/models"
)

// recoveringRepository guards a [MessageRepository] whose database was not
// reachable at startup. Until a ping succeeds every call fails with
// [ErrDatabaseUnavailable]; the first successful ping applies migrations and
// from then on calls go straight to the wrapped repository.
type recoveringRepository struct {
	next    MessageRepository
	db      *DB
	migrate func() error

	ready atomic.Bool
	mu    sync.Mutex

	logger *logger.Logger
}

func newRecoveringRepository(db *DB, next MessageRepository, migrate func() error, log *logger.Logger) *recoveringRepository {
	return &recoveringRepository{
		next:    next,
		db:      db,
		migrate: migrate,
		logger:  log,
	}
}

// connect pings the pool and runs migrations once it answers. A failed
// migration is logged and the connection is still used.
func (r *recoveringRepository) connect(ctx context.Context) error {
	if r.ready.Load() {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ready.Load() {
		return nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := r.db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	if err := r.migrate(); err != nil {
		r.logger.Err(err).Str("func", "recoveringRepository.connect").Msg("migration failed")
	}
	r.ready.Store(true)
	r.logger.Info().Str("func", "recoveringRepository.connect").Msg("connected to database successfully")
	return nil
}

func (r *recoveringRepository) Save(ctx context.Context, message models.Message) (models.Message, error) {
	if err := r.connect(ctx); err != nil {
		return models.Message{}, err
	}
	return r.next.Save(ctx, message)
}

func (r *recoveringRepository) Update(ctx context.Context, message models.Message) (models.Message, error) {
	if err := r.connect(ctx); err != nil {
		return models.Message{}, err
	}
	return r.next.Update(ctx, message)
}

func (r *recoveringRepository) List(ctx context.Context) ([]models.Message, error) {
	if err := r.connect(ctx); err != nil {
		return nil, err
	}
	return r.next.List(ctx)
}

func (r *recoveringRepository) ListOrdered(ctx context.Context) ([]models.Message, error) {
	if err := r.connect(ctx); err != nil {
		return nil, err
	}
	return r.next.ListOrdered(ctx)
}

func (r *recoveringRepository) GetByID(ctx context.Context, id int64) (models.Message, error) {
	if err := r.connect(ctx); err != nil {
		return models.Message{}, err
	}
	return r.next.GetByID(ctx, id)
}

func (r *recoveringRepository) SoftDelete(ctx context.Context, id int64) (models.Message, error) {
	if err := r.connect(ctx); err != nil {
		return models.Message{}, err
	}
	return r.next.SoftDelete(ctx, id)
}

func (r *recoveringRepository) SoftDeleteAll(ctx context.Context) (int64, error) {
	if err := r.connect(ctx); err != nil {
		return 0, err
	}
	return r.next.SoftDeleteAll(ctx)
}

func (r *recoveringRepository) MarkPrinted(ctx context.Context, id int64) (models.Message, error) {
	if err := r.connect(ctx); err != nil {
		return models.Message{}, err
	}
	return r.next.MarkPrinted(ctx, id)
}

func (r *recoveringRepository) ListSinceID(ctx context.Context, sinceID int64, limit uint64) ([]models.Message, error) {
	if err := r.connect(ctx); err != nil {
		return nil, err
	}
	return r.next.ListSinceID(ctx, sinceID, limit)
}

func (r *recoveringRepository) ListAfterID(ctx context.Context, sinceID int64, limit uint64) ([]models.Message, error) {
	if err := r.connect(ctx); err != nil {
		return nil, err
	}
	return r.next.ListAfterID(ctx, sinceID, limit)
}

func (r *recoveringRepository) UnreadCount(ctx context.Context) (int64, error) {
	if err := r.connect(ctx); err != nil {
		return 0, err
	}
	return r.next.UnreadCount(ctx)
}

func (r *recoveringRepository) Latest(ctx context.Context, limit uint64) ([]models.Message, error) {
	if err := r.connect(ctx); err != nil {
		return nil, err
	}
	return r.next.Latest(ctx, limit)
}

func (r *recoveringRepository) Stats(ctx context.Context) (models.Stats, error) {
	if err := r.connect(ctx); err != nil {
		return models.Stats{}, err
	}
	return r.next.Stats(ctx)
}

// Ping reports the live state of the pool, so health follows the database
// both before and after recovery.
func (r *recoveringRepository) Ping(ctx context.Context) error {
	if err := r.connect(ctx); err != nil {
		return err
	}
	return r.next.Ping(ctx)
}
