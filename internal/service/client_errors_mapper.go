// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-kudos-board/internal/adapter"
	"github.com/MKhiriev/go-kudos-board/internal/app"
	"github.com/MKhiriev/go-kudos-board/internal/store"
)

// mapAdapterError translates the adapter's transport error into a business
// error. The original error stays in the chain, so callers can still match
// on the adapter sentinels.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var mapped error

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		switch extractBody(err, adapter.ErrUnauthorized) {
		case app.MsgInvalidCredentials:
			mapped = ErrWrongCredentials
		case app.MsgTokenExpired:
			mapped = ErrTokenIsExpired
		case app.MsgTokenInvalid, app.MsgAccessTokenRequired:
			mapped = ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrNotFound):
		if extractBody(err, adapter.ErrNotFound) == app.MsgMessageNotFound {
			mapped = store.ErrMessageNotFound
		}

	case errors.Is(err, adapter.ErrInternalServerError):
		if extractBody(err, adapter.ErrInternalServerError) == app.MsgDatabaseUnavailable {
			mapped = store.ErrDatabaseUnavailable
		}
	}

	if mapped == nil {
		return err
	}
	return fmt.Errorf("%w: %w", mapped, err)
}

// extractBody extracts the body from a message of the form
// "<sentinel>: <body>".
func extractBody(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if idx := strings.Index(msg, prefix); idx != -1 {
		return msg[idx+len(prefix):]
	}
	return msg
}
