// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MessageStatus is the lifecycle flag of a message row. Rows are never
// removed from the table; deletion flips the status to [MessageStatusDeleted].
type MessageStatus string

const (
	// MessageStatusActive marks a message visible on the board.
	MessageStatusActive MessageStatus = "active"

	// MessageStatusDeleted marks a soft-deleted message.
	MessageStatusDeleted MessageStatus = "deleted"
)

// Message is a single recognition message left by one employee for another.
type Message struct {
	// ID is the server-assigned identifier. Never reused.
	ID int64 `json:"id"`

	// SenderName is the display name of the author.
	SenderName string `json:"sender_name"`

	// RecipientName is the display name of the person being recognised.
	RecipientName string `json:"recipient_name"`

	// Body is the message text.
	Body string `json:"body"`

	// IsPrinted reports whether the message was sent to the print station.
	IsPrinted bool `json:"is_printed"`

	// PrintedAt is set together with IsPrinted and is nil otherwise.
	PrintedAt *time.Time `json:"printed_at"`

	// CreatedAt is the insertion timestamp. Immutable.
	CreatedAt time.Time `json:"created_at"`

	// Status is either "active" or "deleted".
	Status MessageStatus `json:"status"`
}

// IsActive reports whether the message has not been soft-deleted.
func (m Message) IsActive() bool {
	return m.Status == MessageStatusActive
}

// MessageInput is the request body accepted when creating or editing a
// message.
type MessageInput struct {
	SenderName    string `json:"sender_name"`
	RecipientName string `json:"recipient_name"`
	Body          string `json:"body"`
}

// ToMessage converts the input to a [Message] with the given id.
func (in MessageInput) ToMessage(id int64) Message {
	return Message{
		ID:            id,
		SenderName:    in.SenderName,
		RecipientName: in.RecipientName,
		Body:          in.Body,
	}
}

// Stats is the board summary computed over active messages.
type Stats struct {
	Total            int64 `json:"total"`
	Printed          int64 `json:"printed"`
	UniqueRecipients int64 `json:"uniqueRecipients"`
	Recent           int64 `json:"recent"`
}
