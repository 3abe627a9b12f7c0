// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRouter creates a minimal chi.Mux without services behind it.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/messages", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("messages"))
	})
	router.Post("/api/messages", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Delete("/api/messages", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(routeNotFound)

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"GET /api/messages passes through", http.MethodGet, "/api/messages", http.StatusOK},
		{"POST /api/messages passes through", http.MethodPost, "/api/messages", http.StatusCreated},
		{"DELETE /api/messages passes through", http.MethodDelete, "/api/messages", http.StatusOK},
		{"GET /api/health passes through", http.MethodGet, "/api/health", http.StatusOK},

		{"PATCH /api/messages is not a route", http.MethodPatch, "/api/messages", http.StatusNotFound},
		{"PUT /api/messages is not a route", http.MethodPut, "/api/messages", http.StatusNotFound},
		{"POST /api/health is not a route", http.MethodPost, "/api/health", http.StatusNotFound},
		{"DELETE /api/health is not a route", http.MethodDelete, "/api/health", http.StatusNotFound},

		{"unknown path", http.MethodGet, "/api/unknown", http.StatusNotFound},
		{"unknown path with POST", http.MethodPost, "/nothing/here", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_NotFoundEnvelope(t *testing.T) {
	router := buildRouter()

	for _, method := range []string{http.MethodPatch, http.MethodPut} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/messages", nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			require.Equal(t, http.StatusNotFound, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

			var body map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Route not found", body["error"])
		})
	}
}

func TestCheckHTTPMethod_DoesNotCallHandler(t *testing.T) {
	var called bool
	router := chi.NewRouter()
	router.Get("/api/messages/latest", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	req := httptest.NewRequest(http.MethodPost, "/api/messages/latest", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
