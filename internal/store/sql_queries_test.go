// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-kudos-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectMessageColumns = "SELECT id, sender_name, recipient_name, body, is_printed, printed_at, created_at, status FROM messages"

func Test_buildInsertMessageQuery(t *testing.T) {
	message := models.Message{SenderName: "Ana", RecipientName: "Bruno", Body: "Obrigado!"}

	query, args, err := buildInsertMessageQuery(message)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO messages (sender_name,recipient_name,body,status) VALUES ($1,$2,$3,$4)"))
	assert.Contains(t, query, "RETURNING id, sender_name, recipient_name, body, is_printed, printed_at, created_at, status")
	assert.Equal(t, []any{"Ana", "Bruno", "Obrigado!", "active"}, args)
}

func Test_buildUpdateMessageQuery(t *testing.T) {
	message := models.Message{ID: 7, SenderName: "Ana", RecipientName: "Bruno", Body: "edited"}

	query, args, err := buildUpdateMessageQuery(message)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE messages SET sender_name = $1, recipient_name = $2, body = $3")
	assert.Contains(t, query, "WHERE id = $4 AND status = $5")
	assert.Contains(t, query, "RETURNING id")
	assert.Equal(t, []any{"Ana", "Bruno", "edited", int64(7), "active"}, args)
}

func Test_buildSelectQueries(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (string, []any, error)
		wantSQL  []string
		wantArgs []any
		absent   []string
	}{
		{
			name:     "list: active, newest first",
			build:    buildListMessagesQuery,
			wantSQL:  []string{selectMessageColumns, "WHERE status = $1", "ORDER BY created_at DESC"},
			wantArgs: []any{"active"},
		},
		{
			name:  "ordered: unprinted first",
			build: buildListOrderedMessagesQuery,
			wantSQL: []string{
				selectMessageColumns,
				"WHERE status = $1",
				"ORDER BY CASE WHEN is_printed = false THEN 0 ELSE 1 END, created_at DESC",
			},
			wantArgs: []any{"active"},
		},
		{
			name:     "get by id: active scoped",
			build:    func() (string, []any, error) { return buildGetMessageByIDQuery(3) },
			wantSQL:  []string{selectMessageColumns, "WHERE id = $1 AND status = $2"},
			wantArgs: []any{int64(3), "active"},
		},
		{
			name:     "since id: unscoped, highest id first",
			build:    func() (string, []any, error) { return buildListSinceIDQuery(10, 50) },
			wantSQL:  []string{selectMessageColumns, "WHERE id > $1", "ORDER BY id DESC", "LIMIT 50"},
			wantArgs: []any{int64(10)},
			absent:   []string{"status ="},
		},
		{
			name:     "after id: unscoped, lowest id first",
			build:    func() (string, []any, error) { return buildListAfterIDQuery(10, 2) },
			wantSQL:  []string{selectMessageColumns, "WHERE id > $1", "ORDER BY id ASC", "LIMIT 2"},
			wantArgs: []any{int64(10)},
			absent:   []string{"status =", "DESC"},
		},
		{
			name:     "latest: unscoped",
			build:    func() (string, []any, error) { return buildLatestMessagesQuery(10) },
			wantSQL:  []string{selectMessageColumns, "ORDER BY id DESC", "LIMIT 10"},
			wantArgs: nil,
			absent:   []string{"WHERE"},
		},
		{
			name:     "unread count: unscoped",
			build:    buildUnreadCountQuery,
			wantSQL:  []string{"SELECT COUNT(*) FROM messages", "WHERE is_printed = $1"},
			wantArgs: []any{false},
			absent:   []string{"status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()
			require.NoError(t, err)

			for _, part := range tt.wantSQL {
				assert.Contains(t, query, part)
			}
			for _, part := range tt.absent {
				assert.NotContains(t, query, part)
			}
			if tt.wantArgs == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildSoftDeleteMessageQuery(t *testing.T) {
	query, args, err := buildSoftDeleteMessageQuery(5)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE messages SET status = $1")
	assert.Contains(t, query, "WHERE id = $2 AND status = $3")
	assert.Contains(t, query, "RETURNING id")
	assert.Equal(t, []any{"deleted", int64(5), "active"}, args)
}

func Test_buildSoftDeleteAllMessagesQuery(t *testing.T) {
	query, args, err := buildSoftDeleteAllMessagesQuery()
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE messages SET status = $1 WHERE status = $2")
	assert.NotContains(t, query, "RETURNING")
	assert.Equal(t, []any{"deleted", "active"}, args)
}

func Test_buildMarkPrintedQuery(t *testing.T) {
	query, args, err := buildMarkPrintedQuery(9)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE messages SET is_printed = $1, printed_at = NOW()")
	assert.Contains(t, query, "WHERE id = $2")
	assert.NotContains(t, query, "status =")
	assert.Equal(t, []any{true, int64(9)}, args)
}

func Test_buildStatsQueries(t *testing.T) {
	queries := buildStatsQueries()
	require.Len(t, queries, 4)

	want := map[string][]string{
		"total":             {"SELECT COUNT(*) FROM messages WHERE status = $1"},
		"printed":           {"SELECT COUNT(*) FROM messages", "status = $1", "is_printed = $2"},
		"unique_recipients": {"SELECT COUNT(DISTINCT recipient_name) FROM messages WHERE status = $1"},
		"recent":            {"status = $1", "created_at >= NOW() - INTERVAL '7 days'"},
	}

	var stats models.Stats
	seen := make(map[*int64]bool)
	for _, q := range queries {
		query, args, err := q.builder.ToSql()
		require.NoError(t, err, q.name)

		parts, ok := want[q.name]
		require.True(t, ok, "unexpected stats query %q", q.name)
		for _, part := range parts {
			assert.Contains(t, query, part, q.name)
		}
		assert.Equal(t, "active", args[0], q.name)

		dest := q.dest(&stats)
		assert.False(t, seen[dest], "%s shares a destination", q.name)
		seen[dest] = true
	}
}
