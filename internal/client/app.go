package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kudos-board/internal/config"
	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/service"
)

var errNoClientServices = errors.New("client services are not configured")

type App struct {
	services     *service.ClientServices
	pollInterval time.Duration
	logger       *logger.Logger
}

func NewApp(services *service.ClientServices, cfg config.PrinterWorkers, logger *logger.Logger) (Client, error) {
	if services == nil || services.PrintService == nil || services.PrintJob == nil {
		return nil, errNoClientServices
	}

	return &App{
		services:     services,
		pollInterval: cfg.PollInterval,
		logger:       logger,
	}, nil
}

// Run reports the board status, logs in, prints the backlog once and then polls on the configured
// interval. A failed first pass is logged; only a failed login is fatal.
func (a *App) Run(ctx context.Context) error {
	a.logBoardStatus(ctx)

	if err := a.services.PrintService.Login(ctx); err != nil {
		return fmt.Errorf("print station login: %w", err)
	}

	printed, err := a.services.PrintService.PrintNew(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "App.Run").Int("printed", printed).Msg("initial print pass failed")
	} else {
		a.logger.Info().Str("func", "App.Run").Int("printed", printed).Msg("initial print pass done")
	}

	a.services.PrintJob.Start(ctx, a.pollInterval)
	defer a.services.PrintJob.Stop()

	<-ctx.Done()
	a.logger.Info().Str("func", "App.Run").Msg("print station stopping")

	return nil
}

func (a *App) logBoardStatus(ctx context.Context) {
	status, err := a.services.PrintService.BoardStatus(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "App.logBoardStatus").Msg("board is not reachable yet")
		return
	}

	event := a.logger.Info()
	if !status.IsDatabaseConnected() {
		event = a.logger.Warn()
	}
	event.Str("func", "App.logBoardStatus").
		Str("service", status.Service).
		Str("database", status.Database).
		Str("version", status.Version).
		Msg("board status")
}
