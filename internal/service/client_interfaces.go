package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-kudos-board/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// PrintService defines the print station's contract: fetch the messages
// the station has not seen yet and print them exactly once.
type PrintService interface {
	// BoardStatus reports the board API's health. It needs no token.
	BoardStatus(ctx context.Context) (models.HealthStatus, error)

	// Login authenticates with the board API using the configured admin
	// credentials. Returns ErrNoCredentials if none are configured.
	Login(ctx context.Context) error

	// PrintNew prints every new message, oldest first, and returns how many
	// were written to the output. Messages already flagged as printed on
	// the server or recorded in the local journal are skipped.
	PrintNew(ctx context.Context) (int, error)
}

// PrintJob defines the contract for the background worker that
// periodically calls PrintNew.
type PrintJob interface {
	// Start launches the background goroutine. It polls every interval,
	// defaulting to 10 seconds if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
