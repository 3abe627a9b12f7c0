package http

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-kudos-board/internal/config"
	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/service"
	"github.com/MKhiriev/go-kudos-board/internal/utils"
)

type Handler struct {
	services *service.Services

	corsOrigins    []string
	requestTimeout time.Duration
	publicURL      string
	adminEmail     string

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	origins := make([]string, 0, len(cfg.Server.CORSOrigins))
	for _, origin := range cfg.Server.CORSOrigins {
		if origin = strings.TrimRight(strings.TrimSpace(origin), "/"); origin != "" {
			origins = append(origins, origin)
		}
	}

	logger.Info().Strs("cors_origins", origins).Msg("http handler created")
	return &Handler{
		services:       services,
		corsOrigins:    origins,
		requestTimeout: cfg.Server.RequestTimeout,
		publicURL:      cfg.Server.PublicURL,
		adminEmail:     cfg.App.AdminEmail,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
