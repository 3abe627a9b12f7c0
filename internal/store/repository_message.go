package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/models"
	"golang.org/x/sync/errgroup"
)

// messageRepository is the PostgreSQL-backed implementation of
// [MessageRepository]. Every statement is built by the pure builders in
// sql_queries.go and executed on the embedded [*DB] pool.
//
// Methods log through the request-scoped logger obtained with
// [logger.FromContext], so every entry carries the trace id of the request
// that triggered it.
type messageRepository struct {
	*DB
	logger *logger.Logger
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		DB:     db,
		logger: logger,
	}
}

// Save inserts a new active message and returns the stored row with its
// server-assigned id and creation time.
func (r *messageRepository) Save(ctx context.Context, message models.Message) (models.Message, error) {
	query, args, err := buildInsertMessageQuery(message)
	if err != nil {
		return models.Message{}, r.buildFailed(ctx, "messageRepository.Save", err)
	}

	saved, err := r.queryOne(ctx, "messageRepository.Save", query, args)
	if errors.Is(err, ErrMessageNotFound) {
		return models.Message{}, ErrMessageNotSaved
	}
	return saved, err
}

// Update rewrites sender, recipient and body of an active message.
// Returns [ErrMessageNotFound] when the id is unknown or soft-deleted.
func (r *messageRepository) Update(ctx context.Context, message models.Message) (models.Message, error) {
	query, args, err := buildUpdateMessageQuery(message)
	if err != nil {
		return models.Message{}, r.buildFailed(ctx, "messageRepository.Update", err)
	}

	return r.queryOne(ctx, "messageRepository.Update", query, args)
}

// List returns active messages, newest first.
func (r *messageRepository) List(ctx context.Context) ([]models.Message, error) {
	query, args, err := buildListMessagesQuery()
	if err != nil {
		return nil, r.buildFailed(ctx, "messageRepository.List", err)
	}

	return r.queryMany(ctx, "messageRepository.List", query, args)
}

// ListOrdered returns active messages with unprinted ones first, each group
// newest first.
func (r *messageRepository) ListOrdered(ctx context.Context) ([]models.Message, error) {
	query, args, err := buildListOrderedMessagesQuery()
	if err != nil {
		return nil, r.buildFailed(ctx, "messageRepository.ListOrdered", err)
	}

	return r.queryMany(ctx, "messageRepository.ListOrdered", query, args)
}

// GetByID returns a single active message.
func (r *messageRepository) GetByID(ctx context.Context, id int64) (models.Message, error) {
	query, args, err := buildGetMessageByIDQuery(id)
	if err != nil {
		return models.Message{}, r.buildFailed(ctx, "messageRepository.GetByID", err)
	}

	return r.queryOne(ctx, "messageRepository.GetByID", query, args)
}

// SoftDelete flips an active message to "deleted" and returns it.
func (r *messageRepository) SoftDelete(ctx context.Context, id int64) (models.Message, error) {
	query, args, err := buildSoftDeleteMessageQuery(id)
	if err != nil {
		return models.Message{}, r.buildFailed(ctx, "messageRepository.SoftDelete", err)
	}

	return r.queryOne(ctx, "messageRepository.SoftDelete", query, args)
}

// SoftDeleteAll flips every active message to "deleted" and returns how
// many rows changed.
func (r *messageRepository) SoftDeleteAll(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSoftDeleteAllMessagesQuery()
	if err != nil {
		return 0, r.buildFailed(ctx, "messageRepository.SoftDeleteAll", err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		r.logFailure(ctx, err, "messageRepository.SoftDeleteAll", "failed to soft delete all messages")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logFailure(ctx, err, "messageRepository.SoftDeleteAll", "failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().
		Str("func", "messageRepository.SoftDeleteAll").
		Int64("count", affected).
		Msg("messages soft deleted")

	return affected, nil
}

// MarkPrinted sets is_printed and stamps printed_at with the current time.
// Marking an already printed message overwrites the timestamp.
func (r *messageRepository) MarkPrinted(ctx context.Context, id int64) (models.Message, error) {
	query, args, err := buildMarkPrintedQuery(id)
	if err != nil {
		return models.Message{}, r.buildFailed(ctx, "messageRepository.MarkPrinted", err)
	}

	return r.queryOne(ctx, "messageRepository.MarkPrinted", query, args)
}

// ListSinceID returns up to limit messages with an id greater than sinceID,
// highest id first.
func (r *messageRepository) ListSinceID(ctx context.Context, sinceID int64, limit uint64) ([]models.Message, error) {
	query, args, err := buildListSinceIDQuery(sinceID, limit)
	if err != nil {
		return nil, r.buildFailed(ctx, "messageRepository.ListSinceID", err)
	}

	return r.queryMany(ctx, "messageRepository.ListSinceID", query, args)
}

// ListAfterID returns up to limit messages with an id greater than sinceID,
// lowest id first. Paging with the last returned id walks every row.
func (r *messageRepository) ListAfterID(ctx context.Context, sinceID int64, limit uint64) ([]models.Message, error) {
	query, args, err := buildListAfterIDQuery(sinceID, limit)
	if err != nil {
		return nil, r.buildFailed(ctx, "messageRepository.ListAfterID", err)
	}

	return r.queryMany(ctx, "messageRepository.ListAfterID", query, args)
}

// UnreadCount returns the number of messages not yet printed.
func (r *messageRepository) UnreadCount(ctx context.Context) (int64, error) {
	query, args, err := buildUnreadCountQuery()
	if err != nil {
		return 0, r.buildFailed(ctx, "messageRepository.UnreadCount", err)
	}

	var count int64
	if err = r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		r.logFailure(ctx, err, "messageRepository.UnreadCount", "failed to count unread messages")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// Latest returns the limit messages with the highest ids.
func (r *messageRepository) Latest(ctx context.Context, limit uint64) ([]models.Message, error) {
	query, args, err := buildLatestMessagesQuery(limit)
	if err != nil {
		return nil, r.buildFailed(ctx, "messageRepository.Latest", err)
	}

	return r.queryMany(ctx, "messageRepository.Latest", query, args)
}

// Stats computes the board summary. The four counters are queried
// concurrently; the first failure cancels the others.
func (r *messageRepository) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats

	g, gctx := errgroup.WithContext(ctx)
	for _, q := range buildStatsQueries() {
		query, args, err := q.builder.ToSql()
		if err != nil {
			return models.Stats{}, r.buildFailed(ctx, "messageRepository.Stats", err)
		}

		dest := q.dest(&stats)
		name := q.name
		g.Go(func() error {
			if err := r.QueryRowContext(gctx, query, args...).Scan(dest); err != nil {
				r.logFailure(ctx, err, "messageRepository.Stats", "failed to count "+name)
				return fmt.Errorf("%w: %s: %w", ErrExecutingQuery, name, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return models.Stats{}, err
	}

	return stats, nil
}

// Ping reports whether the database answers.
func (r *messageRepository) Ping(ctx context.Context) error {
	return r.DB.Ping(ctx)
}

func (r *messageRepository) queryOne(ctx context.Context, funcName, query string, args []any) (models.Message, error) {
	message, err := scanMessage(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Message{}, ErrMessageNotFound
	}
	if err != nil {
		r.logFailure(ctx, err, funcName, "failed to execute query")
		return models.Message{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return message, nil
}

func (r *messageRepository) queryMany(ctx context.Context, funcName, query string, args []any) ([]models.Message, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logFailure(ctx, err, funcName, "failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0, 50)
	for rows.Next() {
		message, scanErr := scanMessage(rows)
		if scanErr != nil {
			r.logFailure(ctx, scanErr, funcName, "failed to scan message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		messages = append(messages, message)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		r.logFailure(ctx, rowsErr, funcName, "error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return messages, nil
}

func (r *messageRepository) buildFailed(ctx context.Context, funcName string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to build query")
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

func (r *messageRepository) logFailure(ctx context.Context, err error, funcName, msg string) {
	logger.FromContext(ctx).Err(err).
		Str("func", funcName).
		Str("pg_code", postgresError(err)).
		Bool("retryable", r.retryable(err)).
		Msg(msg)
}

func scanMessage(row rowScanner) (models.Message, error) {
	var message models.Message
	err := row.Scan(
		&message.ID,
		&message.SenderName,
		&message.RecipientName,
		&message.Body,
		&message.IsPrinted,
		&message.PrintedAt,
		&message.CreatedAt,
		&message.Status,
	)
	return message, err
}
