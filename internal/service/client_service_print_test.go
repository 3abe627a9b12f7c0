// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-kudos-board/internal/adapter"
	"github.com/MKhiriev/go-kudos-board/internal/app"
	"github.com/MKhiriev/go-kudos-board/internal/config"
	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/mock"
	"github.com/MKhiriev/go-kudos-board/internal/store"
	"github.com/MKhiriev/go-kudos-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var printedAt = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func newTestPrintSvc(t *testing.T) (*printService, *mock.MockBoardAdapter, *mock.MockPrintJournal, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	boardAdapter := mock.NewMockBoardAdapter(ctrl)
	journal := mock.NewMockPrintJournal(ctrl)
	out := &bytes.Buffer{}

	cfg := config.PrinterConfig{
		Credentials: config.PrinterCredentials{Email: "rh.admin", Password: "secret"},
		Workers:     config.PrinterWorkers{BatchSize: 50},
	}

	svc := NewPrintService(boardAdapter, journal, cfg, out, logger.Nop()).(*printService)
	svc.now = func() time.Time { return printedAt }
	return svc, boardAdapter, journal, out
}

func activeMessage(id int64) models.Message {
	return models.Message{
		ID:            id,
		SenderName:    fmt.Sprintf("sender-%d", id),
		RecipientName: fmt.Sprintf("recipient-%d", id),
		Body:          fmt.Sprintf("body-%d", id),
		Status:        models.MessageStatusActive,
		CreatedAt:     printedAt,
	}
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestPrintService_Login(t *testing.T) {
	svc, boardAdapter, _, _ := newTestPrintSvc(t)
	ctx := context.Background()

	boardAdapter.EXPECT().
		Login(ctx, models.LoginRequest{Email: "rh.admin", Password: "secret"}).
		Return(models.Admin{Email: "rh.admin", Role: models.RoleAdmin}, nil)

	require.NoError(t, svc.Login(ctx))
}

func TestPrintService_Login_Failure(t *testing.T) {
	svc, boardAdapter, _, _ := newTestPrintSvc(t)
	ctx := context.Background()

	boardAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.Admin{}, adapter.ErrUnauthorized)

	err := svc.Login(ctx)
	assert.ErrorIs(t, err, ErrLoginFailed)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestPrintService_Login_NoCredentials(t *testing.T) {
	svc, _, _, _ := newTestPrintSvc(t)
	svc.credentials = models.LoginRequest{}

	assert.ErrorIs(t, svc.Login(context.Background()), ErrNoCredentials)
}

// ── PrintNew ────────────────────────────────────────────────────────────────

func TestPrintService_PrintNew_OldestFirst(t *testing.T) {
	svc, boardAdapter, journal, out := newTestPrintSvc(t)
	ctx := context.Background()

	journal.EXPECT().Cursor(ctx).Return(int64(10), nil)
	// pages are sorted before printing
	boardAdapter.EXPECT().NewMessages(ctx, int64(10), 50).
		Return([]models.Message{activeMessage(12), activeMessage(11)}, nil)

	gomock.InOrder(
		journal.EXPECT().IsPrinted(ctx, int64(11)).Return(false, nil),
		journal.EXPECT().RecordPrinted(ctx, int64(11), printedAt).Return(nil),
		boardAdapter.EXPECT().MarkPrinted(ctx, int64(11)).Return(models.Message{ID: 11, IsPrinted: true}, nil),
		journal.EXPECT().IsPrinted(ctx, int64(12)).Return(false, nil),
		journal.EXPECT().RecordPrinted(ctx, int64(12), printedAt).Return(nil),
		boardAdapter.EXPECT().MarkPrinted(ctx, int64(12)).Return(models.Message{ID: 12, IsPrinted: true}, nil),
		journal.EXPECT().SaveCursor(ctx, int64(12)).Return(nil),
	)

	printed, err := svc.PrintNew(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, printed)

	text := out.String()
	assert.Contains(t, text, "KUDOS #11")
	assert.Contains(t, text, "To:   recipient-12")
	assert.Contains(t, text, "From: sender-11")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("KUDOS #11")), bytes.Index(out.Bytes(), []byte("KUDOS #12")))
}

func TestPrintService_PrintNew_SkipsPrintedAndDeleted(t *testing.T) {
	svc, boardAdapter, journal, out := newTestPrintSvc(t)
	ctx := context.Background()

	alreadyPrinted := activeMessage(1)
	alreadyPrinted.IsPrinted = true
	deleted := activeMessage(2)
	deleted.Status = models.MessageStatusDeleted

	journal.EXPECT().Cursor(ctx).Return(int64(0), nil)
	boardAdapter.EXPECT().NewMessages(ctx, int64(0), 50).Return([]models.Message{deleted, alreadyPrinted}, nil)
	journal.EXPECT().SaveCursor(ctx, int64(2)).Return(nil)

	printed, err := svc.PrintNew(ctx)

	require.NoError(t, err)
	assert.Zero(t, printed)
	assert.Empty(t, out.String())
}

func TestPrintService_PrintNew_JournalledButUnmarked(t *testing.T) {
	svc, boardAdapter, journal, out := newTestPrintSvc(t)
	ctx := context.Background()

	journal.EXPECT().Cursor(ctx).Return(int64(4), nil)
	boardAdapter.EXPECT().NewMessages(ctx, int64(4), 50).Return([]models.Message{activeMessage(5)}, nil)
	journal.EXPECT().IsPrinted(ctx, int64(5)).Return(true, nil)
	boardAdapter.EXPECT().MarkPrinted(ctx, int64(5)).Return(models.Message{ID: 5, IsPrinted: true}, nil)
	journal.EXPECT().SaveCursor(ctx, int64(5)).Return(nil)

	printed, err := svc.PrintNew(ctx)

	require.NoError(t, err)
	assert.Zero(t, printed)
	assert.Empty(t, out.String())
}

func TestPrintService_PrintNew_NothingNew(t *testing.T) {
	svc, boardAdapter, journal, _ := newTestPrintSvc(t)
	ctx := context.Background()

	journal.EXPECT().Cursor(ctx).Return(int64(9), nil)
	boardAdapter.EXPECT().NewMessages(ctx, int64(9), 50).Return(nil, nil)

	printed, err := svc.PrintNew(ctx)

	require.NoError(t, err)
	assert.Zero(t, printed)
}

// pagedBoard answers NewMessages the way the board does for order=asc:
// ids above sinceID, lowest first, at most limit of them.
func pagedBoard(ids ...int64) func(context.Context, int64, int) ([]models.Message, error) {
	return func(_ context.Context, sinceID int64, limit int) ([]models.Message, error) {
		var page []models.Message
		for _, id := range ids {
			if id > sinceID && len(page) < limit {
				page = append(page, activeMessage(id))
			}
		}
		return page, nil
	}
}

func TestPrintService_PrintNew_BacklogLargerThanBatch(t *testing.T) {
	tests := []struct {
		name      string
		pending   []int64
		wantPages int
	}{
		{name: "partial last page", pending: []int64{1, 2, 3, 4, 5}, wantPages: 3},
		{name: "full last page", pending: []int64{1, 2, 3, 4}, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, boardAdapter, journal, out := newTestPrintSvc(t)
			svc.batchSize = 2
			ctx := context.Background()
			last := tt.pending[len(tt.pending)-1]

			var marked []int64
			journal.EXPECT().Cursor(ctx).Return(int64(0), nil)
			boardAdapter.EXPECT().NewMessages(ctx, gomock.Any(), 2).
				DoAndReturn(pagedBoard(tt.pending...)).
				Times(tt.wantPages)
			journal.EXPECT().IsPrinted(ctx, gomock.Any()).Return(false, nil).Times(len(tt.pending))
			journal.EXPECT().RecordPrinted(ctx, gomock.Any(), printedAt).Return(nil).Times(len(tt.pending))
			boardAdapter.EXPECT().MarkPrinted(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, id int64) (models.Message, error) {
					marked = append(marked, id)
					return models.Message{ID: id, IsPrinted: true}, nil
				}).
				Times(len(tt.pending))
			journal.EXPECT().SaveCursor(ctx, last).Return(nil)

			printed, err := svc.PrintNew(ctx)

			require.NoError(t, err)
			assert.Equal(t, len(tt.pending), printed)
			assert.Equal(t, tt.pending, marked)
			for _, id := range tt.pending {
				assert.Contains(t, out.String(), fmt.Sprintf("KUDOS #%d ", id))
			}
		})
	}
}

func TestPrintService_PrintNew_PageFailureKeepsEarlierPages(t *testing.T) {
	svc, boardAdapter, journal, _ := newTestPrintSvc(t)
	svc.batchSize = 1
	ctx := context.Background()
	fetchErr := errors.New("connection reset")

	journal.EXPECT().Cursor(ctx).Return(int64(0), nil)
	gomock.InOrder(
		boardAdapter.EXPECT().NewMessages(ctx, int64(0), 1).Return([]models.Message{activeMessage(1)}, nil),
		boardAdapter.EXPECT().NewMessages(ctx, int64(1), 1).Return(nil, fetchErr),
	)
	journal.EXPECT().IsPrinted(ctx, int64(1)).Return(false, nil)
	journal.EXPECT().RecordPrinted(ctx, int64(1), printedAt).Return(nil)
	boardAdapter.EXPECT().MarkPrinted(ctx, int64(1)).Return(models.Message{ID: 1, IsPrinted: true}, nil)
	journal.EXPECT().SaveCursor(ctx, int64(1)).Return(nil)

	printed, err := svc.PrintNew(ctx)

	assert.ErrorIs(t, err, fetchErr)
	assert.Equal(t, 1, printed)
}

func TestPrintService_PrintNew_ReloginOnUnauthorized(t *testing.T) {
	svc, boardAdapter, journal, _ := newTestPrintSvc(t)
	ctx := context.Background()

	journal.EXPECT().Cursor(ctx).Return(int64(0), nil)
	gomock.InOrder(
		boardAdapter.EXPECT().NewMessages(ctx, int64(0), 50).Return(nil, fmt.Errorf("%w: token expired", adapter.ErrUnauthorized)),
		boardAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.Admin{Email: "rh.admin"}, nil),
		boardAdapter.EXPECT().NewMessages(ctx, int64(0), 50).Return([]models.Message{activeMessage(1)}, nil),
	)
	journal.EXPECT().IsPrinted(ctx, int64(1)).Return(false, nil)
	journal.EXPECT().RecordPrinted(ctx, int64(1), printedAt).Return(nil)
	boardAdapter.EXPECT().MarkPrinted(ctx, int64(1)).Return(models.Message{ID: 1}, nil)
	journal.EXPECT().SaveCursor(ctx, int64(1)).Return(nil)

	printed, err := svc.PrintNew(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, printed)
}

func TestPrintService_PrintNew_ReloginFails(t *testing.T) {
	svc, boardAdapter, journal, _ := newTestPrintSvc(t)
	ctx := context.Background()

	journal.EXPECT().Cursor(ctx).Return(int64(0), nil)
	boardAdapter.EXPECT().NewMessages(ctx, int64(0), 50).Return(nil, adapter.ErrUnauthorized)
	boardAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.Admin{}, adapter.ErrUnauthorized)

	_, err := svc.PrintNew(ctx)

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.ErrorIs(t, err, ErrLoginFailed)
}

func TestPrintService_PrintNew_MarkFailureKeepsCursor(t *testing.T) {
	svc, boardAdapter, journal, _ := newTestPrintSvc(t)
	ctx := context.Background()
	markErr := errors.New("board down")

	journal.EXPECT().Cursor(ctx).Return(int64(0), nil)
	boardAdapter.EXPECT().NewMessages(ctx, int64(0), 50).
		Return([]models.Message{activeMessage(2), activeMessage(1)}, nil)

	journal.EXPECT().IsPrinted(ctx, int64(1)).Return(false, nil)
	journal.EXPECT().RecordPrinted(ctx, int64(1), printedAt).Return(nil)
	boardAdapter.EXPECT().MarkPrinted(ctx, int64(1)).Return(models.Message{ID: 1}, nil)

	journal.EXPECT().IsPrinted(ctx, int64(2)).Return(false, nil)
	journal.EXPECT().RecordPrinted(ctx, int64(2), printedAt).Return(nil)
	boardAdapter.EXPECT().MarkPrinted(ctx, int64(2)).Return(models.Message{}, markErr)

	// only the fully handled message moves the cursor
	journal.EXPECT().SaveCursor(ctx, int64(1)).Return(nil)

	printed, err := svc.PrintNew(ctx)

	assert.ErrorIs(t, err, markErr)
	assert.Equal(t, 2, printed)
}

func TestPrintService_PrintNew_CursorError(t *testing.T) {
	svc, _, journal, _ := newTestPrintSvc(t)
	ctx := context.Background()
	dbErr := errors.New("disk I/O error")

	journal.EXPECT().Cursor(ctx).Return(int64(0), dbErr)

	_, err := svc.PrintNew(ctx)
	assert.ErrorIs(t, err, dbErr)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("paper jam") }

func TestPrintService_PrintNew_RenderFailure(t *testing.T) {
	svc, boardAdapter, journal, _ := newTestPrintSvc(t)
	svc.out = failingWriter{}
	ctx := context.Background()

	journal.EXPECT().Cursor(ctx).Return(int64(0), nil)
	boardAdapter.EXPECT().NewMessages(ctx, int64(0), 50).Return([]models.Message{activeMessage(1)}, nil)
	journal.EXPECT().IsPrinted(ctx, int64(1)).Return(false, nil)

	printed, err := svc.PrintNew(ctx)

	assert.ErrorIs(t, err, ErrRenderFailed)
	assert.Zero(t, printed)
}

func TestPrintService_Render(t *testing.T) {
	svc, _, _, out := newTestPrintSvc(t)

	require.NoError(t, svc.render(activeMessage(42)))

	lines := bytes.Split(out.Bytes(), []byte("\n"))
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Len(t, lines[0], ticketWidth)
	assert.Len(t, lines[1], ticketWidth)
	assert.True(t, bytes.HasPrefix(lines[1], []byte("KUDOS #42 ")))
	assert.Equal(t, "To:   recipient-42", string(lines[2]))
	assert.Equal(t, "From: sender-42", string(lines[3]))
	assert.Equal(t, "body-42", string(lines[5]))
}

func TestPrintService_PrintNew_VanishedMessageIsHandled(t *testing.T) {
	svc, boardAdapter, journal, out := newTestPrintSvc(t)
	ctx := context.Background()

	journal.EXPECT().Cursor(ctx).Return(int64(3), nil)
	boardAdapter.EXPECT().NewMessages(ctx, int64(3), 50).Return([]models.Message{activeMessage(4)}, nil)
	journal.EXPECT().IsPrinted(ctx, int64(4)).Return(false, nil)
	journal.EXPECT().RecordPrinted(ctx, int64(4), printedAt).Return(nil)
	boardAdapter.EXPECT().MarkPrinted(ctx, int64(4)).
		Return(models.Message{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgMessageNotFound))
	journal.EXPECT().SaveCursor(ctx, int64(4)).Return(nil)

	printed, err := svc.PrintNew(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, printed)
	assert.Contains(t, out.String(), "KUDOS #4")
}

func TestPrintService_Login_WrongCredentials(t *testing.T) {
	svc, boardAdapter, _, _ := newTestPrintSvc(t)
	ctx := context.Background()

	boardAdapter.EXPECT().Login(ctx, gomock.Any()).
		Return(models.Admin{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidCredentials))

	err := svc.Login(ctx)

	assert.ErrorIs(t, err, ErrLoginFailed)
	assert.ErrorIs(t, err, ErrWrongCredentials)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestPrintService_BoardStatus(t *testing.T) {
	svc, boardAdapter, _, _ := newTestPrintSvc(t)
	ctx := context.Background()

	want := models.HealthStatus{Service: "RH Backend API", Status: "online", Database: models.DatabaseConnected}
	boardAdapter.EXPECT().Health(ctx).Return(want, nil)

	got, err := svc.BoardStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPrintService_BoardStatus_Error(t *testing.T) {
	svc, boardAdapter, _, _ := newTestPrintSvc(t)
	ctx := context.Background()

	boardAdapter.EXPECT().Health(ctx).
		Return(models.HealthStatus{}, fmt.Errorf("%w: %s", adapter.ErrInternalServerError, app.MsgDatabaseUnavailable))

	_, err := svc.BoardStatus(ctx)
	assert.ErrorIs(t, err, store.ErrDatabaseUnavailable)
}
