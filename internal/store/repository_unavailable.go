package store

import (
	"context"

	"github.com/MKhiriev/go-kudos-board/models"
)

// unavailableRepository stands in for [MessageRepository] while the server
// runs without a database. Every call fails with [ErrDatabaseUnavailable].
type unavailableRepository struct{}

// NewUnavailableMessageRepository returns the degraded-mode repository.
func NewUnavailableMessageRepository() MessageRepository {
	return unavailableRepository{}
}

func (unavailableRepository) Save(context.Context, models.Message) (models.Message, error) {
	return models.Message{}, ErrDatabaseUnavailable
}

func (unavailableRepository) Update(context.Context, models.Message) (models.Message, error) {
	return models.Message{}, ErrDatabaseUnavailable
}

func (unavailableRepository) List(context.Context) ([]models.Message, error) {
	return nil, ErrDatabaseUnavailable
}

func (unavailableRepository) ListOrdered(context.Context) ([]models.Message, error) {
	return nil, ErrDatabaseUnavailable
}

func (unavailableRepository) GetByID(context.Context, int64) (models.Message, error) {
	return models.Message{}, ErrDatabaseUnavailable
}

func (unavailableRepository) SoftDelete(context.Context, int64) (models.Message, error) {
	return models.Message{}, ErrDatabaseUnavailable
}

func (unavailableRepository) SoftDeleteAll(context.Context) (int64, error) {
	return 0, ErrDatabaseUnavailable
}

func (unavailableRepository) MarkPrinted(context.Context, int64) (models.Message, error) {
	return models.Message{}, ErrDatabaseUnavailable
}

func (unavailableRepository) ListSinceID(context.Context, int64, uint64) ([]models.Message, error) {
	return nil, ErrDatabaseUnavailable
}

func (unavailableRepository) ListAfterID(context.Context, int64, uint64) ([]models.Message, error) {
	return nil, ErrDatabaseUnavailable
}

func (unavailableRepository) UnreadCount(context.Context) (int64, error) {
	return 0, ErrDatabaseUnavailable
}

func (unavailableRepository) Latest(context.Context, uint64) ([]models.Message, error) {
	return nil, ErrDatabaseUnavailable
}

func (unavailableRepository) Stats(context.Context) (models.Stats, error) {
	return models.Stats{}, ErrDatabaseUnavailable
}

func (unavailableRepository) Ping(context.Context) error {
	return ErrDatabaseUnavailable
}
