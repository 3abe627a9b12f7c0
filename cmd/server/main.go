package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kudos-board/internal/config"
	"github.com/MKhiriev/go-kudos-board/internal/handler"
	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/server"
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
	buildInfo := newBuildInfo()
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("server", "").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "N/A" && buildInfo.BuildVersion() != "N/A" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger("server", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("environment", cfg.App.Environment).
		Strs("cors_origins", cfg.Server.CORSOrigins).
		Msg("received configs")

	storages := store.NewStorages(context.Background(), cfg.Storage, log)
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("public_url", cfg.Server.PublicURL).Bool("database_configured", storages.Connected()).Msg("kudos board starting")
	srv.RunServer()
}

func newBuildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
