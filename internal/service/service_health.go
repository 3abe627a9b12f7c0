package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-kudos-board/internal/config"
	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/models"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "RH Backend API"

const healthPingTimeout = 2 * time.Second

// Pinger reports datastore liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	pinger      Pinger
	environment string
	version     string

	now    func() time.Time
	logger *logger.Logger
}

func NewHealthService(pinger Pinger, cfg config.App, logger *logger.Logger) HealthService {
	return &healthService{
		pinger:      pinger,
		environment: cfg.Environment,
		version:     cfg.Version,
		now:         time.Now,
		logger:      logger,
	}
}

// Check never fails: an unreachable database is reported as
// "disconnected" while the service itself stays "online".
func (h *healthService) Check(ctx context.Context) models.HealthStatus {
	status := models.HealthStatus{
		Service:     ServiceName,
		Status:      "online",
		Database:    models.DatabaseConnected,
		Timestamp:   h.now().UTC(),
		Environment: h.environment,
		Version:     h.version,
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := h.pinger.Ping(pingCtx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "healthService.Check").Msg("database ping failed")
		status.Database = models.DatabaseDisconnected
	}

	return status
}
