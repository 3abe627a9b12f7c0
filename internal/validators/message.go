package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-kudos-board/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldSenderName targets the author display name.
	FieldSenderName = "sender_name"

	// FieldRecipientName targets the recipient display name.
	FieldRecipientName = "recipient_name"

	// FieldBody targets the message text.
	FieldBody = "body"

	// FieldID targets the message identifier.
	FieldID = "id"

	// FieldEmail targets the login of a [models.LoginRequest].
	FieldEmail = "email"

	// FieldPassword targets the password of a [models.LoginRequest].
	FieldPassword = "password"
)

// maxNameLength mirrors the VARCHAR(255) columns of the messages table.
const maxNameLength = 255

// MessageValidator implements [Validator] for message submissions, stored
// messages and login requests. Text fields are checked after trimming
// surrounding whitespace.
type MessageValidator struct{}

// NewMessageValidator constructs a new MessageValidator and returns it as
// the Validator interface.
func NewMessageValidator() Validator {
	return &MessageValidator{}
}

// Validate dispatches validation to the type-specific method. Without
// fields, every field of the type is checked.
func (v *MessageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MessageInput:
		return v.validateInput(ctx, value, fields...)
	case *models.MessageInput:
		return v.validateInput(ctx, *value, fields...)

	case models.Message:
		return v.validateMessage(ctx, value, fields...)
	case *models.Message:
		return v.validateMessage(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MessageValidator) validateInput(ctx context.Context, input models.MessageInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSenderName, FieldRecipientName, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldSenderName:
			if err := checkName(input.SenderName, ErrEmptySenderName); err != nil {
				return err
			}
		case FieldRecipientName:
			if err := checkName(input.RecipientName, ErrEmptyRecipientName); err != nil {
				return err
			}
		case FieldBody:
			if isBlank(input.Body) {
				return ErrEmptyBody
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessageValidator) validateMessage(ctx context.Context, message models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldSenderName, FieldRecipientName, FieldBody}
	}

	input := models.MessageInput{
		SenderName:    message.SenderName,
		RecipientName: message.RecipientName,
		Body:          message.Body,
	}

	for _, f := range fields {
		if f == FieldID {
			if message.ID <= 0 {
				return ErrInvalidMessageID
			}
			continue
		}
		if err := v.validateInput(ctx, input, f); err != nil {
			return err
		}
	}

	return nil
}

func (v *MessageValidator) validateLogin(ctx context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(request.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkName(name string, errEmpty error) error {
	if isBlank(name) {
		return errEmpty
	}
	if utf8.RuneCountInString(strings.TrimSpace(name)) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
