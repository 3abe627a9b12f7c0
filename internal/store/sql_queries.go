package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-kudos-board/models"
	sq "github.com/Masterminds/squirrel"
)

const messagesTable = "messages"

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	messageColumns = []string{
		"id",
		"sender_name",
		"recipient_name",
		"body",
		"is_printed",
		"printed_at",
		"created_at",
		"status",
	}

	returningMessage = "RETURNING " + strings.Join(messageColumns, ", ")

	unprintedFirst = "CASE WHEN is_printed = false THEN 0 ELSE 1 END"

	active  = sq.Eq{"status": string(models.MessageStatusActive)}
	deleted = string(models.MessageStatusDeleted)
)

func buildInsertMessageQuery(message models.Message) (string, []any, error) {
	return psql.Insert(messagesTable).
		Columns("sender_name", "recipient_name", "body", "status").
		Values(message.SenderName, message.RecipientName, message.Body, string(models.MessageStatusActive)).
		Suffix(returningMessage).
		ToSql()
}

func buildUpdateMessageQuery(message models.Message) (string, []any, error) {
	return psql.Update(messagesTable).
		Set("sender_name", message.SenderName).
		Set("recipient_name", message.RecipientName).
		Set("body", message.Body).
		Where(sq.Eq{"id": message.ID}).
		Where(active).
		Suffix(returningMessage).
		ToSql()
}

func buildListMessagesQuery() (string, []any, error) {
	return psql.Select(messageColumns...).
		From(messagesTable).
		Where(active).
		OrderBy("created_at DESC").
		ToSql()
}

func buildListOrderedMessagesQuery() (string, []any, error) {
	return psql.Select(messageColumns...).
		From(messagesTable).
		Where(active).
		OrderBy(unprintedFirst, "created_at DESC").
		ToSql()
}

func buildGetMessageByIDQuery(id int64) (string, []any, error) {
	return psql.Select(messageColumns...).
		From(messagesTable).
		Where(sq.Eq{"id": id}).
		Where(active).
		ToSql()
}

func buildSoftDeleteMessageQuery(id int64) (string, []any, error) {
	return psql.Update(messagesTable).
		Set("status", deleted).
		Where(sq.Eq{"id": id}).
		Where(active).
		Suffix(returningMessage).
		ToSql()
}

func buildSoftDeleteAllMessagesQuery() (string, []any, error) {
	return psql.Update(messagesTable).
		Set("status", deleted).
		Where(active).
		ToSql()
}

// buildMarkPrintedQuery is not status-scoped: a soft-deleted row can still
// be marked printed.
func buildMarkPrintedQuery(id int64) (string, []any, error) {
	return psql.Update(messagesTable).
		Set("is_printed", true).
		Set("printed_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returningMessage).
		ToSql()
}

func buildListSinceIDQuery(sinceID int64, limit uint64) (string, []any, error) {
	return psql.Select(messageColumns...).
		From(messagesTable).
		Where(sq.Gt{"id": sinceID}).
		OrderBy("id DESC").
		Limit(limit).
		ToSql()
}

func buildListAfterIDQuery(sinceID int64, limit uint64) (string, []any, error) {
	return psql.Select(messageColumns...).
		From(messagesTable).
		Where(sq.Gt{"id": sinceID}).
		OrderBy("id ASC").
		Limit(limit).
		ToSql()
}

func buildUnreadCountQuery() (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(messagesTable).
		Where(sq.Eq{"is_printed": false}).
		ToSql()
}

func buildLatestMessagesQuery(limit uint64) (string, []any, error) {
	return psql.Select(messageColumns...).
		From(messagesTable).
		OrderBy("id DESC").
		Limit(limit).
		ToSql()
}

// statsQuery is one of the four counters behind [models.Stats].
type statsQuery struct {
	name    string
	builder sq.SelectBuilder
	dest    func(stats *models.Stats) *int64
}

func buildStatsQueries() []statsQuery {
	return []statsQuery{
		{
			name:    "total",
			builder: psql.Select("COUNT(*)").From(messagesTable).Where(active),
			dest:    func(s *models.Stats) *int64 { return &s.Total },
		},
		{
			name:    "printed",
			builder: psql.Select("COUNT(*)").From(messagesTable).Where(active).Where(sq.Eq{"is_printed": true}),
			dest:    func(s *models.Stats) *int64 { return &s.Printed },
		},
		{
			name:    "unique_recipients",
			builder: psql.Select("COUNT(DISTINCT recipient_name)").From(messagesTable).Where(active),
			dest:    func(s *models.Stats) *int64 { return &s.UniqueRecipients },
		},
		{
			name: "recent",
			builder: psql.Select("COUNT(*)").From(messagesTable).Where(active).
				Where(fmt.Sprintf("created_at >= NOW() - INTERVAL '%d days'", recentWindowDays)),
			dest: func(s *models.Stats) *int64 { return &s.Recent },
		},
	}
}

const recentWindowDays = 7
