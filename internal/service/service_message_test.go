package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/mock"
	"github.com/MKhiriev/go-kudos-board/internal/store"
	"github.com/MKhiriev/go-kudos-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMessageService(t *testing.T) (MessageService, *mock.MockMessageRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockMessageRepository(ctrl)
	return NewMessageService(repo, logger.Nop()), repo
}

func TestMessageService_Submit_TrimsInput(t *testing.T) {
	svc, repo := newTestMessageService(t)
	ctx := context.Background()

	saved := models.Message{ID: 1, SenderName: "Alice", RecipientName: "Bob", Body: "Thanks!", Status: models.MessageStatusActive}
	repo.EXPECT().
		Save(ctx, models.Message{SenderName: "Alice", RecipientName: "Bob", Body: "Thanks!"}).
		Return(saved, nil)

	got, err := svc.Submit(ctx, models.MessageInput{SenderName: "  Alice ", RecipientName: "Bob\n", Body: "\tThanks!"})

	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestMessageService_Update_PassesID(t *testing.T) {
	svc, repo := newTestMessageService(t)
	ctx := context.Background()

	repo.EXPECT().
		Update(ctx, models.Message{ID: 7, SenderName: "A", RecipientName: "B", Body: "C"}).
		Return(models.Message{}, store.ErrMessageNotFound)

	_, err := svc.Update(ctx, 7, models.MessageInput{SenderName: "A", RecipientName: "B", Body: "C"})
	assert.ErrorIs(t, err, store.ErrMessageNotFound)
}

func TestMessageService_Delegates(t *testing.T) {
	svc, repo := newTestMessageService(t)
	ctx := context.Background()
	rows := []models.Message{{ID: 2}, {ID: 1}}

	repo.EXPECT().List(ctx).Return(rows, nil)
	repo.EXPECT().ListOrdered(ctx).Return(rows, nil)
	repo.EXPECT().GetByID(ctx, int64(2)).Return(rows[0], nil)
	repo.EXPECT().SoftDelete(ctx, int64(2)).Return(rows[0], nil)
	repo.EXPECT().MarkPrinted(ctx, int64(1)).Return(rows[1], nil)
	repo.EXPECT().UnreadCount(ctx).Return(int64(4), nil)
	repo.EXPECT().Stats(ctx).Return(models.Stats{Total: 3}, nil)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, list)

	ordered, err := svc.ListOrdered(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, ordered)

	got, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)

	deleted, err := svc.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted.ID)

	printed, err := svc.MarkPrinted(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), printed.ID)

	unread, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), unread)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
}

func TestMessageService_DeleteAll(t *testing.T) {
	svc, repo := newTestMessageService(t)
	ctx := context.Background()

	repo.EXPECT().SoftDeleteAll(ctx).Return(int64(5), nil)
	count, err := svc.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)

	dbErr := errors.New("boom")
	repo.EXPECT().SoftDeleteAll(ctx).Return(int64(0), dbErr)
	_, err = svc.DeleteAll(ctx)
	assert.ErrorIs(t, err, dbErr)
}

func TestMessageService_ListSinceID_ClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  uint64
	}{
		{"zero uses default", 0, DefaultSinceLimit},
		{"negative uses default", -3, DefaultSinceLimit},
		{"within range", 20, 20},
		{"capped", 10_000, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestMessageService(t)
			ctx := context.Background()

			repo.EXPECT().ListSinceID(ctx, int64(3), tt.want).Return(nil, nil)
			_, err := svc.ListSinceID(ctx, 3, tt.limit)
			require.NoError(t, err)
		})
	}
}

func TestMessageService_ListAfterID_ClampsLimit(t *testing.T) {
	svc, repo := newTestMessageService(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().ListAfterID(ctx, int64(0), uint64(DefaultSinceLimit)).Return(nil, nil),
		repo.EXPECT().ListAfterID(ctx, int64(7), uint64(MaxLimit)).Return(nil, nil),
	)

	_, err := svc.ListAfterID(ctx, 0, 0)
	require.NoError(t, err)
	_, err = svc.ListAfterID(ctx, 7, MaxLimit+1)
	require.NoError(t, err)
}

func TestMessageService_Latest_ClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  uint64
	}{
		{"zero uses default", 0, DefaultLatestLimit},
		{"within range", 3, 3},
		{"capped", MaxLimit + 1, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestMessageService(t)
			ctx := context.Background()

			repo.EXPECT().Latest(ctx, tt.want).Return([]models.Message{{ID: 1}}, nil)
			got, err := svc.Latest(ctx, tt.limit)
			require.NoError(t, err)
			assert.Len(t, got, 1)
		})
	}
}
