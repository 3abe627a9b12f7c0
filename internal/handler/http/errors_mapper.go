package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-kudos-board/internal/app"
	"github.com/MKhiriev/go-kudos-board/internal/service"
	"github.com/MKhiriev/go-kudos-board/internal/store"
	"github.com/MKhiriev/go-kudos-board/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrInvalidSinceID:        http.StatusBadRequest,
	validators.ErrEmptySenderName:    http.StatusBadRequest,
	validators.ErrEmptyRecipientName: http.StatusBadRequest,
	validators.ErrEmptyBody:          http.StatusBadRequest,
	validators.ErrNameTooLong:        http.StatusBadRequest,
	validators.ErrInvalidMessageID:   http.StatusBadRequest,
	ErrInvalidJSON:                   http.StatusBadRequest,
	ErrInvalidMessageID:              http.StatusBadRequest,
	ErrInvalidQueryParam:             http.StatusBadRequest,

	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,
	ErrEmptyToken:                      http.StatusUnauthorized,
	ErrNoClaimsInContext:               http.StatusUnauthorized,

	ErrOriginNotAllowed: http.StatusForbidden,

	store.ErrMessageNotFound: http.StatusNotFound,
	ErrRouteNotFound:         http.StatusNotFound,

	store.ErrDatabaseUnavailable:   http.StatusInternalServerError,
	store.ErrMessageNotSaved:       http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessages are the client-facing texts of known errors, checked in
// order. Unlisted 4xx errors expose their own text; unlisted 5xx errors are
// reported as a generic internal error.
var errorMessages = []struct {
	target  error
	message string
}{
	{store.ErrDatabaseUnavailable, app.MsgDatabaseUnavailable},
	{store.ErrMessageNotFound, app.MsgMessageNotFound},
	{service.ErrWrongCredentials, app.MsgInvalidCredentials},
	{ErrEmptyAuthorizationHeader, app.MsgAccessTokenRequired},
	{service.ErrTokenIsExpired, app.MsgTokenExpired},
	{service.ErrTokenIsExpiredOrInvalid, app.MsgTokenInvalid},
	{ErrInvalidAuthorizationHeader, app.MsgTokenInvalid},
	{ErrEmptyToken, app.MsgTokenInvalid},
	{ErrNoClaimsInContext, app.MsgTokenInvalid},
	{ErrOriginNotAllowed, app.MsgNotAllowedByCORS},
	{ErrRouteNotFound, app.MsgRouteNotFound},
}

func messageFromError(err error, status int) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	if status >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	return err.Error()
}
