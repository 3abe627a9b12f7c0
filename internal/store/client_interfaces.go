package store

import (
	"context"
	"time"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// PrintJournal is the print station's local record of what it already
// printed. It survives restarts so that no message is printed twice.
type PrintJournal interface {
	// Cursor returns the highest message id the station has processed.
	Cursor(ctx context.Context) (int64, error)
	// SaveCursor moves the cursor forward. Lower ids are ignored.
	SaveCursor(ctx context.Context, sinceID int64) error
	IsPrinted(ctx context.Context, messageID int64) (bool, error)
	RecordPrinted(ctx context.Context, messageID int64, at time.Time) error
}
