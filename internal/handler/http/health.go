package http

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/utils"
	"github.com/MKhiriev/go-kudos-board/models"
)

//go:embed templates/status.html
var statusPageSource string

var statusPage = template.Must(template.New("status").Parse(statusPageSource))

// healthResponse flattens the health status into the envelope.
type healthResponse struct {
	Success bool `json:"success"`
	models.HealthStatus
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.HealthService.Check(r.Context())

	if _, err := utils.WriteJSON(w, healthResponse{Success: true, HealthStatus: status}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.health").Msg("writing response failed")
	}
}

type endpoint struct {
	Method    string
	Path      string
	Summary   string
	Protected bool
}

var publishedEndpoints = []endpoint{
	{"GET", "/api/health", "Server status", false},
	{"POST", "/api/login", "Admin login", false},
	{"GET", "/api/verify-token", "Validate a token", true},
	{"GET", "/api/messages", "List messages", false},
	{"POST", "/api/messages/public", "Submit a message", false},
	{"GET", "/api/messages/new", "Messages since an id", true},
	{"GET", "/api/stats", "Board statistics", false},
}

type statusPageData struct {
	models.HealthStatus
	Online     bool
	PublicURL  string
	AdminEmail string
	Endpoints  []endpoint
}

func (h *Handler) statusPage(w http.ResponseWriter, r *http.Request) {
	status := h.services.HealthService.Check(r.Context())

	var page bytes.Buffer
	err := statusPage.Execute(&page, statusPageData{
		HealthStatus: status,
		Online:       status.IsDatabaseConnected(),
		PublicURL:    h.publicURL,
		AdminEmail:   h.adminEmail,
		Endpoints:    publishedEndpoints,
	})
	if err != nil {
		writeError(w, r, "Handler.statusPage", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err = page.WriteTo(w); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.statusPage").Msg("writing status page failed")
	}
}
