package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/store"
	"github.com/MKhiriev/go-kudos-board/models"
)

// Page sizes of the polling endpoints.
const (
	DefaultSinceLimit  = 50
	DefaultLatestLimit = 10
	MaxLimit           = 500
)

type messageService struct {
	messageRepository store.MessageRepository

	logger *logger.Logger
}

// NewMessageService returns a MessageService delegating to messageRepository.
// It performs no validation; compose it with [NewMessageValidationService].
func NewMessageService(messageRepository store.MessageRepository, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		logger:            logger,
	}
}

func (m *messageService) Submit(ctx context.Context, input models.MessageInput) (models.Message, error) {
	return m.messageRepository.Save(ctx, normalize(input).ToMessage(0))
}

func (m *messageService) Update(ctx context.Context, id int64, input models.MessageInput) (models.Message, error) {
	return m.messageRepository.Update(ctx, normalize(input).ToMessage(id))
}

func (m *messageService) List(ctx context.Context) ([]models.Message, error) {
	return m.messageRepository.List(ctx)
}

func (m *messageService) ListOrdered(ctx context.Context) ([]models.Message, error) {
	return m.messageRepository.ListOrdered(ctx)
}

func (m *messageService) Get(ctx context.Context, id int64) (models.Message, error) {
	return m.messageRepository.GetByID(ctx, id)
}

func (m *messageService) Delete(ctx context.Context, id int64) (models.Message, error) {
	return m.messageRepository.SoftDelete(ctx, id)
}

func (m *messageService) DeleteAll(ctx context.Context) (int64, error) {
	count, err := m.messageRepository.SoftDeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info().Str("func", "messageService.DeleteAll").Int64("count", count).Msg("messages deleted")
	return count, nil
}

func (m *messageService) MarkPrinted(ctx context.Context, id int64) (models.Message, error) {
	return m.messageRepository.MarkPrinted(ctx, id)
}

func (m *messageService) ListSinceID(ctx context.Context, sinceID int64, limit int) ([]models.Message, error) {
	return m.messageRepository.ListSinceID(ctx, sinceID, clampLimit(limit, DefaultSinceLimit))
}

func (m *messageService) ListAfterID(ctx context.Context, sinceID int64, limit int) ([]models.Message, error) {
	return m.messageRepository.ListAfterID(ctx, sinceID, clampLimit(limit, DefaultSinceLimit))
}

func (m *messageService) UnreadCount(ctx context.Context) (int64, error) {
	return m.messageRepository.UnreadCount(ctx)
}

func (m *messageService) Latest(ctx context.Context, limit int) ([]models.Message, error) {
	return m.messageRepository.Latest(ctx, clampLimit(limit, DefaultLatestLimit))
}

func (m *messageService) Stats(ctx context.Context) (models.Stats, error) {
	return m.messageRepository.Stats(ctx)
}

// clampLimit maps a non-positive limit to def and caps it at MaxLimit.
func clampLimit(limit, def int) uint64 {
	switch {
	case limit <= 0:
		return uint64(def)
	case limit > MaxLimit:
		return MaxLimit
	default:
		return uint64(limit)
	}
}

func normalize(input models.MessageInput) models.MessageInput {
	return models.MessageInput{
		SenderName:    strings.TrimSpace(input.SenderName),
		RecipientName: strings.TrimSpace(input.RecipientName),
		Body:          strings.TrimSpace(input.Body),
	}
}
