// Package http implements the HTTP transport layer of the kudos board.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, CORS, and response compression are handled in this package before
// requests are delegated to the service layer. Every JSON answer uses the
// [models.Response] envelope.
package http
