package http

import (
	"net/http"

	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/utils"
	"github.com/MKhiriev/go-kudos-board/models"
)

func writeResponse(w http.ResponseWriter, r *http.Request, status int, response models.Response) {
	if _, err := utils.WriteJSON(w, response, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeResponse").Msg("writing response failed")
	}
}

func writeOK(w http.ResponseWriter, r *http.Request, response models.Response) {
	response.Success = true
	writeResponse(w, r, http.StatusOK, response)
}

// writeError logs err and answers with the failure envelope. Server-side
// failures are logged as errors, client mistakes as warnings.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	writeResponse(w, r, status, models.Response{Error: messageFromError(err, status)})
}

func count(n int64) *int64 {
	return &n
}
