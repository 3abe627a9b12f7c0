package config

import (
	"fmt"
	"time"
)

// PrinterCredentials is the admin identity the print station logs in with.
type PrinterCredentials struct {
	Email    string
	Password string
}

// PrinterAdapter holds network settings used by the print station transport
// layer.
type PrinterAdapter struct {
	// HTTPAddress is the board API base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// PrinterJournal contains the local SQLite journal settings.
type PrinterJournal struct {
	// DSN is the SQLite file path.
	DSN string
}

// PrinterWorkers contains print job settings.
type PrinterWorkers struct {
	// PollInterval defines how often new messages are fetched.
	PollInterval time.Duration
	// BatchSize is the maximum number of messages fetched per poll.
	BatchSize int
}

// PrinterConfig is the print station configuration assembled from
// [StructuredConfig].
type PrinterConfig struct {
	Credentials PrinterCredentials
	Adapter     PrinterAdapter
	Journal     PrinterJournal
	Workers     PrinterWorkers

	// Output is the file printed messages are appended to. Empty means stdout.
	Output string

	// LogLevel is the minimal zerolog level.
	LogLevel string
}

// GetPrinterConfig builds and validates a print-station config view from the
// merged structured configuration.
//
// It loads the base config, maps only the fields relevant to the print
// station, and validates the resulting [PrinterConfig]. The server-side
// validation (token sign key) does not apply here.
func GetPrinterConfig() (*PrinterConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	printerCfg := newPrinterConfig(cfg)

	return printerCfg, printerCfg.validate()
}

func newPrinterConfig(cfg *StructuredConfig) *PrinterConfig {
	return &PrinterConfig{
		Credentials: PrinterCredentials{
			Email:    cfg.App.AdminEmail,
			Password: cfg.App.AdminPassword,
		},
		Adapter: PrinterAdapter{
			HTTPAddress:    cfg.Printer.ServerAddress,
			RequestTimeout: cfg.Printer.RequestTimeout,
		},
		Journal: PrinterJournal{DSN: cfg.Printer.JournalDSN},
		Workers: PrinterWorkers{
			PollInterval: cfg.Printer.PollInterval,
			BatchSize:    cfg.Printer.BatchSize,
		},
		Output:   cfg.Printer.Output,
		LogLevel: cfg.App.LogLevel,
	}
}
