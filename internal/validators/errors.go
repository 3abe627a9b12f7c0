package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySenderName    = errors.New("sender_name is required")
	ErrEmptyRecipientName = errors.New("recipient_name is required")
	ErrEmptyBody          = errors.New("body is required")
	ErrNameTooLong        = errors.New("name exceeds 255 characters")
	ErrInvalidMessageID   = errors.New("invalid message id")
	ErrEmptyEmail         = errors.New("email is required")
	ErrEmptyPassword      = errors.New("password is required")
)
