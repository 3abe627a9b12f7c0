package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-kudos-board/internal/adapter"
	"github.com/MKhiriev/go-kudos-board/internal/config"
	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/store"
	"github.com/MKhiriev/go-kudos-board/models"
)

const (
	ticketWidth     = 48
	ticketTimestamp = "2006-01-02 15:04"
)

type printService struct {
	boardAdapter adapter.BoardAdapter
	journal      store.PrintJournal

	credentials models.LoginRequest
	batchSize   int

	// mu serialises passes so that the job and a manual run never print the
	// same message twice.
	mu  sync.Mutex
	out io.Writer
	now func() time.Time

	logger *logger.Logger
}

// NewPrintService constructs a PrintService writing rendered tickets to out.
func NewPrintService(
	boardAdapter adapter.BoardAdapter,
	journal store.PrintJournal,
	cfg config.PrinterConfig,
	out io.Writer,
	logger *logger.Logger,
) PrintService {
	return &printService{
		boardAdapter: boardAdapter,
		journal:      journal,
		credentials: models.LoginRequest{
			Email:    cfg.Credentials.Email,
			Password: cfg.Credentials.Password,
		},
		batchSize: cfg.Workers.BatchSize,
		out:       out,
		now:       time.Now,
		logger:    logger,
	}
}

func (p *printService) BoardStatus(ctx context.Context) (models.HealthStatus, error) {
	status, err := p.boardAdapter.Health(ctx)
	if err != nil {
		p.logger.Err(err).Str("func", "printService.BoardStatus").Msg("board health check failed")
		return models.HealthStatus{}, fmt.Errorf("board health: %w", mapAdapterError(err))
	}
	return status, nil
}

func (p *printService) Login(ctx context.Context) error {
	if p.credentials.Email == "" || p.credentials.Password == "" {
		return ErrNoCredentials
	}

	admin, err := p.boardAdapter.Login(ctx, p.credentials)
	if err != nil {
		p.logger.Err(err).Str("func", "printService.Login").Msg("login failed")
		return fmt.Errorf("%w: %w", ErrLoginFailed, mapAdapterError(err))
	}

	p.logger.Info().Str("func", "printService.Login").Str("email", admin.Email).Msg("logged in")
	return nil
}

// PrintNew implements PrintService.
//
// Pages are fetched oldest first starting at the cursor; a full page means
// more may be waiting, so the next page starts after the last handled id.
// The cursor only moves over messages that were fully handled, so a failure
// in the middle of a batch resumes from the failed message on the next pass.
// A message is recorded in the journal right after it is rendered; if the
// server mark fails afterwards, the next pass re-marks it without printing.
func (p *printService) PrintNew(ctx context.Context) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	log := p.logger

	cursor, err := p.journal.Cursor(ctx)
	if err != nil {
		log.Err(err).Str("func", "printService.PrintNew").Msg("reading cursor failed")
		return 0, fmt.Errorf("reading cursor: %w", err)
	}

	printed := 0
	handled := cursor
	for {
		messages, err := withRelogin(ctx, p, func() ([]models.Message, error) {
			return p.boardAdapter.NewMessages(ctx, handled, p.batchSize)
		})
		if err != nil {
			log.Err(err).Str("func", "printService.PrintNew").Int64("since_id", handled).Msg("fetching new messages failed")
			fetchErr := fmt.Errorf("fetching new messages: %w", mapAdapterError(err))
			return printed, errors.Join(fetchErr, p.saveCursor(ctx, cursor, handled))
		}

		slices.SortFunc(messages, func(a, b models.Message) int {
			return cmp.Compare(a.ID, b.ID)
		})

		progressed := false
		for _, message := range messages {
			if message.ID <= handled {
				continue
			}

			n, err := p.handle(ctx, message)
			printed += n
			if err != nil {
				log.Err(err).Str("func", "printService.PrintNew").Int64("id", message.ID).Msg("message handling failed")
				return printed, errors.Join(err, p.saveCursor(ctx, cursor, handled))
			}
			handled = message.ID
			progressed = true
		}

		if !progressed || len(messages) < p.batchSize {
			break
		}
	}

	if err = p.saveCursor(ctx, cursor, handled); err != nil {
		return printed, err
	}

	if printed > 0 {
		log.Info().Str("func", "printService.PrintNew").Int("printed", printed).Int64("cursor", handled).Msg("messages printed")
	}
	return printed, nil
}

// handle prints a single message unless it is deleted or already printed,
// and makes sure the server knows it was printed. It reports 1 when the
// message was written to the output.
func (p *printService) handle(ctx context.Context, message models.Message) (int, error) {
	if !message.IsActive() || message.IsPrinted {
		return 0, nil
	}

	done, err := p.journal.IsPrinted(ctx, message.ID)
	if err != nil {
		return 0, fmt.Errorf("reading journal: %w", err)
	}

	printed := 0
	if !done {
		if err = p.render(message); err != nil {
			return 0, err
		}
		if err = p.journal.RecordPrinted(ctx, message.ID, p.now()); err != nil {
			return 1, fmt.Errorf("recording printed message: %w", err)
		}
		printed = 1
	}

	_, err = withRelogin(ctx, p, func() (models.Message, error) {
		return p.boardAdapter.MarkPrinted(ctx, message.ID)
	})
	if err = mapAdapterError(err); errors.Is(err, store.ErrMessageNotFound) {
		// nothing left to mark on the board
		p.logger.Warn().Str("func", "printService.handle").Int64("id", message.ID).Msg("message vanished before it was marked")
		return printed, nil
	}
	if err != nil {
		return printed, fmt.Errorf("marking message printed: %w", err)
	}

	return printed, nil
}

func (p *printService) saveCursor(ctx context.Context, previous, handled int64) error {
	if handled <= previous {
		return nil
	}
	if err := p.journal.SaveCursor(ctx, handled); err != nil {
		p.logger.Err(err).Str("func", "printService.saveCursor").Int64("cursor", handled).Msg("saving cursor failed")
		return fmt.Errorf("saving cursor: %w", err)
	}
	return nil
}

// render writes one ticket:
//
//	================================================
//	KUDOS #42                       2026-10-18 14:03
//	To:   Bob
//	From: Alice
//
//	Thanks for the help with the release!
//	================================================
func (p *printService) render(message models.Message) error {
	rule := strings.Repeat("=", ticketWidth)
	title := fmt.Sprintf("KUDOS #%d", message.ID)
	stamp := message.CreatedAt.Local().Format(ticketTimestamp)
	gap := max(ticketWidth-len(title)-len(stamp), 1)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(title + strings.Repeat(" ", gap) + stamp + "\n")
	b.WriteString("To:   " + message.RecipientName + "\n")
	b.WriteString("From: " + message.SenderName + "\n\n")
	b.WriteString(message.Body + "\n")
	b.WriteString(rule + "\n\n")

	if _, err := io.WriteString(p.out, b.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	return nil
}

// withRelogin runs call and, if the board rejects the token, logs in once
// and retries.
func withRelogin[T any](ctx context.Context, p *printService, call func() (T, error)) (T, error) {
	result, err := call()
	if err == nil || !errors.Is(err, adapter.ErrUnauthorized) {
		return result, err
	}

	p.logger.Warn().Str("func", "printService.withRelogin").Msg("token rejected, logging in again")
	if loginErr := p.Login(ctx); loginErr != nil {
		var zero T
		return zero, errors.Join(err, loginErr)
	}

	return call()
}
