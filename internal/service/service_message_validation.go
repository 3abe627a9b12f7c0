package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/validators"
	"github.com/MKhiriev/go-kudos-board/models"
)

// MessageValidationService rejects malformed input before it reaches the
// wrapped MessageService. Every rejection wraps ErrInvalidDataProvided.
type MessageValidationService struct {
	inner     MessageService
	validator validators.Validator
}

func NewMessageValidationService() MessageServiceWrapper {
	return &MessageValidationService{
		validator: validators.NewMessageValidator(),
	}
}

func (v *MessageValidationService) Wrap(inner MessageService) MessageService {
	v.inner = inner
	return v
}

func (v *MessageValidationService) Submit(ctx context.Context, input models.MessageInput) (models.Message, error) {
	if err := v.validate(ctx, "Submit", input); err != nil {
		return models.Message{}, err
	}
	return v.inner.Submit(ctx, input)
}

func (v *MessageValidationService) Update(ctx context.Context, id int64, input models.MessageInput) (models.Message, error) {
	if err := v.validate(ctx, "Update", input.ToMessage(id)); err != nil {
		return models.Message{}, err
	}
	return v.inner.Update(ctx, id, input)
}

func (v *MessageValidationService) List(ctx context.Context) ([]models.Message, error) {
	return v.inner.List(ctx)
}

func (v *MessageValidationService) ListOrdered(ctx context.Context) ([]models.Message, error) {
	return v.inner.ListOrdered(ctx)
}

func (v *MessageValidationService) Get(ctx context.Context, id int64) (models.Message, error) {
	if err := v.validateID(ctx, "Get", id); err != nil {
		return models.Message{}, err
	}
	return v.inner.Get(ctx, id)
}

func (v *MessageValidationService) Delete(ctx context.Context, id int64) (models.Message, error) {
	if err := v.validateID(ctx, "Delete", id); err != nil {
		return models.Message{}, err
	}
	return v.inner.Delete(ctx, id)
}

func (v *MessageValidationService) DeleteAll(ctx context.Context) (int64, error) {
	return v.inner.DeleteAll(ctx)
}

func (v *MessageValidationService) MarkPrinted(ctx context.Context, id int64) (models.Message, error) {
	if err := v.validateID(ctx, "MarkPrinted", id); err != nil {
		return models.Message{}, err
	}
	return v.inner.MarkPrinted(ctx, id)
}

func (v *MessageValidationService) ListSinceID(ctx context.Context, sinceID int64, limit int) ([]models.Message, error) {
	if err := v.validateSinceID(ctx, "ListSinceID", sinceID); err != nil {
		return nil, err
	}
	return v.inner.ListSinceID(ctx, sinceID, limit)
}

func (v *MessageValidationService) ListAfterID(ctx context.Context, sinceID int64, limit int) ([]models.Message, error) {
	if err := v.validateSinceID(ctx, "ListAfterID", sinceID); err != nil {
		return nil, err
	}
	return v.inner.ListAfterID(ctx, sinceID, limit)
}

func (v *MessageValidationService) UnreadCount(ctx context.Context) (int64, error) {
	return v.inner.UnreadCount(ctx)
}

func (v *MessageValidationService) Latest(ctx context.Context, limit int) ([]models.Message, error) {
	return v.inner.Latest(ctx, limit)
}

func (v *MessageValidationService) Stats(ctx context.Context) (models.Stats, error) {
	return v.inner.Stats(ctx)
}

func (v *MessageValidationService) validateSinceID(ctx context.Context, method string, sinceID int64) error {
	if sinceID < 0 {
		logger.FromContext(ctx).Error().Str("func", "MessageValidationService."+method).Int64("since_id", sinceID).Msg("invalid since_id")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrInvalidSinceID)
	}
	return nil
}

func (v *MessageValidationService) validateID(ctx context.Context, method string, id int64) error {
	return v.validate(ctx, method, models.Message{ID: id}, validators.FieldID)
}

func (v *MessageValidationService) validate(ctx context.Context, method string, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "MessageValidationService."+method).Msg("validation failed")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
