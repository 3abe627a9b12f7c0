// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the print station's transport to the board API.
//
// The primary abstraction is [BoardAdapter], which decouples the print
// service from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPBoardAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-kudos-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/board_adapter_mock.go -package=mock

// BoardAdapter defines transport-agnostic communication with the board API.
type BoardAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates with the admin credentials. On success it stores
	// the returned token via SetToken and returns the admin identity.
	Login(ctx context.Context, request models.LoginRequest) (models.Admin, error)

	// NewMessages fetches up to limit messages with an id above sinceID,
	// oldest first, regardless of their status. Fewer than limit messages
	// means nothing newer is waiting.
	NewMessages(ctx context.Context, sinceID int64, limit int) ([]models.Message, error)

	// MarkPrinted flags the message as printed and returns the updated row.
	MarkPrinted(ctx context.Context, id int64) (models.Message, error)

	// Health reports the board API status. It needs no token.
	Health(ctx context.Context) (models.HealthStatus, error)
}
