package config

import (
	"net"
	"strings"
	"time"
)

const (
	defaultAdminEmail     = "rh.admin"
	defaultTokenIssuer    = "kudos-board"
	defaultTokenDuration  = 24 * time.Hour
	defaultEnvironment    = "development"
	defaultVersion        = "N/A"
	defaultLogLevel       = "debug"
	defaultPort           = "3001"
	defaultRequestTimeout = 30 * time.Second

	defaultPrinterServerAddress  = "http://localhost:3001"
	defaultPrinterRequestTimeout = 15 * time.Second
	defaultPrinterPollInterval   = 10 * time.Second
	defaultPrinterBatchSize      = 50
	defaultPrinterJournalDSN     = "printer.db"
)

var defaultCORSOrigins = []string{"http://localhost:5501", "http://127.0.0.1:5500"}

// applyDefaults fills every zero field that has a documented default and
// resolves the hosting-platform aliases (DATABASE_URL, PORT).
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = cfg.DatabaseURL
	}

	if cfg.Server.HTTPAddress == "" {
		port := cfg.Port
		if port == "" {
			port = defaultPort
		}
		cfg.Server.HTTPAddress = ":" + port
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = append([]string(nil), defaultCORSOrigins...)
	}
	cfg.Server.CORSOrigins = trimAll(cfg.Server.CORSOrigins)
	if cfg.Server.PublicURL == "" {
		_, port, err := net.SplitHostPort(cfg.Server.HTTPAddress)
		if err != nil || port == "" {
			port = defaultPort
		}
		cfg.Server.PublicURL = "http://localhost:" + port
	}

	if cfg.App.AdminEmail == "" {
		cfg.App.AdminEmail = defaultAdminEmail
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = defaultEnvironment
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}

	if cfg.Printer.ServerAddress == "" {
		cfg.Printer.ServerAddress = defaultPrinterServerAddress
	}
	if cfg.Printer.RequestTimeout == 0 {
		cfg.Printer.RequestTimeout = defaultPrinterRequestTimeout
	}
	if cfg.Printer.PollInterval == 0 {
		cfg.Printer.PollInterval = defaultPrinterPollInterval
	}
	if cfg.Printer.BatchSize == 0 {
		cfg.Printer.BatchSize = defaultPrinterBatchSize
	}
	if cfg.Printer.JournalDSN == "" {
		cfg.Printer.JournalDSN = defaultPrinterJournalDSN
	}
}

func trimAll(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
