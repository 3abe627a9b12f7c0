package store

import (
	"context"

	"github.com/MKhiriev/go-kudos-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MessageRepository persists recognition messages. Active-scoped methods
// ignore rows whose status is "deleted".
type MessageRepository interface {
	Save(ctx context.Context, message models.Message) (models.Message, error)
	Update(ctx context.Context, message models.Message) (models.Message, error)
	List(ctx context.Context) ([]models.Message, error)
	ListOrdered(ctx context.Context) ([]models.Message, error)
	GetByID(ctx context.Context, id int64) (models.Message, error)
	SoftDelete(ctx context.Context, id int64) (models.Message, error)
	SoftDeleteAll(ctx context.Context) (int64, error)

	// MarkPrinted, ListSinceID, ListAfterID, UnreadCount and Latest are not
	// status-scoped.
	MarkPrinted(ctx context.Context, id int64) (models.Message, error)
	ListSinceID(ctx context.Context, sinceID int64, limit uint64) ([]models.Message, error)
	ListAfterID(ctx context.Context, sinceID int64, limit uint64) ([]models.Message, error)
	UnreadCount(ctx context.Context) (int64, error)
	Latest(ctx context.Context, limit uint64) ([]models.Message, error)

	Stats(ctx context.Context) (models.Stats, error)
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
