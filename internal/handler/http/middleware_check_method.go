// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 Method Not Allowed whenever a path matches a registered
// route but the method is not handled. The board answers 404 with the
// failure envelope instead, so an unsupported method looks exactly like an
// unknown route.
//
// The lookup compares each registered route pattern against the raw request
// path ([http.Request.URL.Path]). Only exact pattern matches are considered;
// parameterised segments are not expanded, so such paths always get 404.
// If the method IS registered for the matched route, the request is
// forwarded to the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			writeError(w, r, "CheckHTTPMethod", ErrRouteNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// routeNotFound answers unknown paths with the failure envelope.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, "routeNotFound", ErrRouteNotFound)
}
