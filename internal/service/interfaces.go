package service

import (
	"context"

	"github.com/MKhiriev/go-kudos-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=MessageServiceWrapper

// MessageService is the board's business layer over the message repository.
type MessageService interface {
	Submit(ctx context.Context, input models.MessageInput) (models.Message, error)
	Update(ctx context.Context, id int64, input models.MessageInput) (models.Message, error)

	List(ctx context.Context) ([]models.Message, error)
	ListOrdered(ctx context.Context) ([]models.Message, error)
	Get(ctx context.Context, id int64) (models.Message, error)

	Delete(ctx context.Context, id int64) (models.Message, error)
	DeleteAll(ctx context.Context) (int64, error)

	MarkPrinted(ctx context.Context, id int64) (models.Message, error)
	// ListSinceID returns messages with an id above sinceID, newest first.
	// A zero limit selects the default page size.
	ListSinceID(ctx context.Context, sinceID int64, limit int) ([]models.Message, error)
	// ListAfterID is ListSinceID ordered oldest first, for callers that page
	// through every message above a cursor.
	ListAfterID(ctx context.Context, sinceID int64, limit int) ([]models.Message, error)
	UnreadCount(ctx context.Context) (int64, error)
	Latest(ctx context.Context, limit int) ([]models.Message, error)

	Stats(ctx context.Context) (models.Stats, error)
}

type AuthService interface {
	Login(ctx context.Context, request models.LoginRequest) (models.Admin, error)
	CreateToken(ctx context.Context, admin models.Admin) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type HealthService interface {
	Check(ctx context.Context) models.HealthStatus
}

// MessageServiceWrapper defines middleware composition for MessageService.
// Implementations wrap an existing MessageService to add behavior such as
// logging or validating.
type MessageServiceWrapper interface {
	Wrap(MessageService) MessageService // returns a decorated MessageService applying additional behavior
}
