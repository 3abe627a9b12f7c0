package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, h.withCORS)
	router.Use(middleware.Compress(compressionLevel))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.statusPage)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Post("/api/login", h.login)

		r.Get("/api/messages", h.listMessages)
		r.Get("/api/messages/stats", h.stats)
		r.Get("/api/stats", h.stats)
		r.Post("/api/messages/public", h.submitMessage)
	})

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/verify-token", h.verifyToken)

		r.Get("/api/messages/new", h.newMessages)
		r.Get("/api/messages/ordered", h.orderedMessages)
		r.Get("/api/messages/unread-count", h.unreadCount)
		r.Get("/api/messages/latest", h.latestMessages)
		r.Get("/api/messages/{id}", h.getMessage)

		r.Post("/api/messages", h.createMessage)
		r.Put("/api/messages/{id}", h.updateMessage)
		r.Put("/api/messages/{id}/printed", h.markPrinted)
		r.Delete("/api/messages", h.deleteAllMessages)
		r.Delete("/api/messages/{id}", h.deleteMessage)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(routeNotFound)

	return router
}
