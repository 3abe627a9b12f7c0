package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-kudos-board/internal/app"
	"github.com/MKhiriev/go-kudos-board/internal/utils"
	"github.com/MKhiriev/go-kudos-board/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.MessageService.List(r.Context())
	if err != nil {
		writeError(w, r, "Handler.listMessages", err)
		return
	}

	writeMessages(w, r, messages)
}

func (h *Handler) orderedMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.MessageService.ListOrdered(r.Context())
	if err != nil {
		writeError(w, r, "Handler.orderedMessages", err)
		return
	}

	writeMessages(w, r, messages)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.MessageService.Stats(r.Context())
	if err != nil {
		writeError(w, r, "Handler.stats", err)
		return
	}

	writeOK(w, r, models.Response{Data: stats})
}

// submitMessage serves the public form. createMessage is the same
// operation behind admin authentication.
func (h *Handler) submitMessage(w http.ResponseWriter, r *http.Request) {
	h.saveMessage(w, r, "Handler.submitMessage")
}

func (h *Handler) createMessage(w http.ResponseWriter, r *http.Request) {
	h.saveMessage(w, r, "Handler.createMessage")
}

func (h *Handler) saveMessage(w http.ResponseWriter, r *http.Request, funcName string) {
	var input models.MessageInput
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		writeError(w, r, funcName, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	message, err := h.services.MessageService.Submit(r.Context(), input)
	if err != nil {
		writeError(w, r, funcName, err)
		return
	}

	writeResponse(w, r, http.StatusCreated, models.Response{
		Success: true,
		Message: app.MsgMessageSaved,
		Data:    message,
	})
}

func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	id, err := messageID(r)
	if err != nil {
		writeError(w, r, "Handler.getMessage", err)
		return
	}

	message, err := h.services.MessageService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "Handler.getMessage", err)
		return
	}

	writeOK(w, r, models.Response{Data: message})
}

func (h *Handler) updateMessage(w http.ResponseWriter, r *http.Request) {
	id, err := messageID(r)
	if err != nil {
		writeError(w, r, "Handler.updateMessage", err)
		return
	}

	var input models.MessageInput
	if err = utils.DecodeJSON(w, r, &input); err != nil {
		writeError(w, r, "Handler.updateMessage", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	message, err := h.services.MessageService.Update(r.Context(), id, input)
	if err != nil {
		writeError(w, r, "Handler.updateMessage", err)
		return
	}

	writeOK(w, r, models.Response{Message: app.MsgMessageUpdated, Data: message})
}

func (h *Handler) markPrinted(w http.ResponseWriter, r *http.Request) {
	id, err := messageID(r)
	if err != nil {
		writeError(w, r, "Handler.markPrinted", err)
		return
	}

	message, err := h.services.MessageService.MarkPrinted(r.Context(), id)
	if err != nil {
		writeError(w, r, "Handler.markPrinted", err)
		return
	}

	writeOK(w, r, models.Response{Message: app.MsgMessagePrinted, Data: message})
}

func (h *Handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := messageID(r)
	if err != nil {
		writeError(w, r, "Handler.deleteMessage", err)
		return
	}

	message, err := h.services.MessageService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, "Handler.deleteMessage", err)
		return
	}

	writeOK(w, r, models.Response{Message: app.MsgMessageDeleted, Data: message})
}

func (h *Handler) deleteAllMessages(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.services.MessageService.DeleteAll(r.Context())
	if err != nil {
		writeError(w, r, "Handler.deleteAllMessages", err)
		return
	}

	writeOK(w, r, models.Response{
		Message: fmt.Sprintf(app.MsgMessagesDeletedFn, deleted),
		Count:   count(deleted),
	})
}

// newMessages serves the print station: ?since_id=<id>&limit=<n>[&order=asc].
// The default order is newest first; order=asc pages oldest first.
func (h *Handler) newMessages(w http.ResponseWriter, r *http.Request) {
	sinceID, err := int64Query(r, "since_id")
	if err != nil {
		writeError(w, r, "Handler.newMessages", err)
		return
	}
	limit, err := int64Query(r, "limit")
	if err != nil {
		writeError(w, r, "Handler.newMessages", err)
		return
	}

	var messages []models.Message
	switch order := r.URL.Query().Get("order"); order {
	case "", "desc":
		messages, err = h.services.MessageService.ListSinceID(r.Context(), sinceID, int(limit))
	case "asc":
		messages, err = h.services.MessageService.ListAfterID(r.Context(), sinceID, int(limit))
	default:
		err = fmt.Errorf("%w: order=%q", ErrInvalidQueryParam, order)
	}
	if err != nil {
		writeError(w, r, "Handler.newMessages", err)
		return
	}

	writeMessages(w, r, messages)
}

func (h *Handler) unreadCount(w http.ResponseWriter, r *http.Request) {
	unread, err := h.services.MessageService.UnreadCount(r.Context())
	if err != nil {
		writeError(w, r, "Handler.unreadCount", err)
		return
	}

	writeOK(w, r, models.Response{Count: count(unread)})
}

func (h *Handler) latestMessages(w http.ResponseWriter, r *http.Request) {
	limit, err := int64Query(r, "limit")
	if err != nil {
		writeError(w, r, "Handler.latestMessages", err)
		return
	}

	messages, err := h.services.MessageService.Latest(r.Context(), int(limit))
	if err != nil {
		writeError(w, r, "Handler.latestMessages", err)
		return
	}

	writeMessages(w, r, messages)
}

// writeMessages answers with {success, count, data}. An empty result is
// encoded as [] rather than null.
func writeMessages(w http.ResponseWriter, r *http.Request, messages []models.Message) {
	if messages == nil {
		messages = []models.Message{}
	}
	writeOK(w, r, models.Response{Count: count(int64(len(messages))), Data: messages})
}

func messageID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMessageID, raw)
	}
	return id, nil
}

// int64Query parses an optional integer query parameter. Absent means 0.
func int64Query(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, name, raw)
	}
	return value, nil
}
