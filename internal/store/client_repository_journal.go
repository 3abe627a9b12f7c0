package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kudos-board/internal/logger"
)

// printJournal is the SQLite-backed implementation of [PrintJournal].
type printJournal struct {
	*DB
	logger *logger.Logger
}

// NewPrintJournal constructs a [PrintJournal] on an already migrated SQLite
// connection.
func NewPrintJournal(db *DB, logger *logger.Logger) PrintJournal {
	return &printJournal{
		DB:     db,
		logger: logger,
	}
}

func (j *printJournal) Cursor(ctx context.Context) (int64, error) {
	var sinceID int64
	err := j.QueryRowContext(ctx, getPrintCursor).Scan(&sinceID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "printJournal.Cursor").Msg("failed to read print cursor")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return sinceID, nil
}

func (j *printJournal) SaveCursor(ctx context.Context, sinceID int64) error {
	if _, err := j.ExecContext(ctx, savePrintCursor, sinceID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "printJournal.SaveCursor").
			Int64("since_id", sinceID).
			Msg("failed to save print cursor")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (j *printJournal) IsPrinted(ctx context.Context, messageID int64) (bool, error) {
	var printed bool
	if err := j.QueryRowContext(ctx, isMessagePrinted, messageID).Scan(&printed); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "printJournal.IsPrinted").
			Int64("message_id", messageID).
			Msg("failed to look up printed message")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return printed, nil
}

func (j *printJournal) RecordPrinted(ctx context.Context, messageID int64, at time.Time) error {
	if _, err := j.ExecContext(ctx, recordPrintedMessage, messageID, at.UTC()); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "printJournal.RecordPrinted").
			Int64("message_id", messageID).
			Msg("failed to record printed message")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
