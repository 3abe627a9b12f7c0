package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-kudos-board/internal/adapter"
	"github.com/MKhiriev/go-kudos-board/internal/client"
	"github.com/MKhiriev/go-kudos-board/internal/config"
	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/service"
	"github.com/MKhiriev/go-kudos-board/internal/store"
	"github.com/MKhiriev/go-kudos-board/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	run()
	os.Exit(exitCode)
}

var exitCode int

func run() {
	cfg, err := config.GetPrinterConfig()
	if err != nil {
		logger.NewClientLogger("printer", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("printer", cfg.LogLevel)
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", info.BuildVersion()).
		Str("date", info.BuildDate()).
		Str("commit", info.BuildCommit()).
		Str("server", cfg.Adapter.HTTPAddress).
		Msg("print station starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening print output")
	}
	defer closeOut()

	boardAdapter, err := adapter.NewHTTPBoardAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create board adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Journal, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create print journal")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing print journal")
		}
	}()

	services := service.NewClientServices(storages, boardAdapter, *cfg, out, log)

	app, err := client.NewApp(services, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init print station")
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("print station run error")
		exitCode = 1
	}
}

// openOutput returns the ticket sink: stdout, or the file at path opened
// for appending.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return file, func() { _ = file.Close() }, nil
}
