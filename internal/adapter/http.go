package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-kudos-board/internal/config"
	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/utils"
	"github.com/MKhiriev/go-kudos-board/models"
	"github.com/go-resty/resty/v2"
)

const defaultRequestTimeout = 15 * time.Second

type httpBoardAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBoardAdapter constructs an HTTP/REST implementation of
// [BoardAdapter] bound to cfg.HTTPAddress. A missing scheme defaults to
// http and trailing slashes are trimmed.
//
// Returns ErrEmptyAddress if cfg.HTTPAddress is blank.
func NewHTTPBoardAdapter(cfg config.PrinterAdapter, logger *logger.Logger) (BoardAdapter, error) {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		return nil, fmt.Errorf("invalid adapter http address: %w", ErrEmptyAddress)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &httpBoardAdapter{
		client: utils.NewHTTPClient(cfg.HTTPAddress, timeout),
		logger: logger,
	}, nil
}

func (h *httpBoardAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBoardAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [BoardAdapter]. It POSTs the credentials to
// POST /api/login and keeps the returned token.
func (h *httpBoardAdapter) Login(ctx context.Context, request models.LoginRequest) (models.Admin, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&result).
		Post("/api/login")
	if err != nil {
		return models.Admin{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Admin{}, err
	}
	if !result.Success || result.Token == "" {
		return models.Admin{}, fmt.Errorf("login: %w", ErrUnsuccessfulAnswer)
	}

	h.SetToken(result.Token)
	return result.User, nil
}

// NewMessages implements [BoardAdapter] via GET /api/messages/new.
func (h *httpBoardAdapter) NewMessages(ctx context.Context, sinceID int64, limit int) ([]models.Message, error) {
	var result models.MessagesResponse

	req := h.authedRequest(ctx).
		SetQueryParam("since_id", strconv.FormatInt(sinceID, 10)).
		SetQueryParam("order", "asc").
		SetResult(&result)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/messages/new")
	if err != nil {
		return nil, fmt.Errorf("new messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("new messages: %w: %s", ErrUnsuccessfulAnswer, result.Error)
	}

	return result.Data, nil
}

// MarkPrinted implements [BoardAdapter] via PUT /api/messages/{id}/printed.
func (h *httpBoardAdapter) MarkPrinted(ctx context.Context, id int64) (models.Message, error) {
	var result models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&result).
		Put("/api/messages/{id}/printed")
	if err != nil {
		return models.Message{}, fmt.Errorf("mark printed request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}
	if !result.Success {
		return models.Message{}, fmt.Errorf("mark printed: %w: %s", ErrUnsuccessfulAnswer, result.Error)
	}

	return result.Data, nil
}

// Health implements [BoardAdapter] via GET /api/health.
func (h *httpBoardAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/api/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	return status, nil
}

func (h *httpBoardAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
