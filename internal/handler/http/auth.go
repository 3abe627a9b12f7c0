package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-kudos-board/internal/app"
	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/utils"
	"github.com/MKhiriev/go-kudos-board/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.LoginRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		writeError(w, r, "Handler.login", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	admin, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, "Handler.login", err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, admin)
	if err != nil {
		writeError(w, r, "Handler.login", err)
		return
	}

	logger.FromRequest(r).Info().Str("func", "Handler.login").Str("email", admin.Email).Msg("admin logged in")

	writeOK(w, r, models.Response{
		Message: app.MsgLoginSuccessful,
		Token:   token.SignedString,
		User:    &admin,
	})
}

func (h *Handler) verifyToken(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.verifyToken", ErrNoClaimsInContext)
		return
	}

	admin := claims.User()
	writeOK(w, r, models.Response{User: &admin})
}
