// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable texts the board API writes into
// response envelopes.
//
// The server uses them when answering and the print station matches on them
// when translating failed responses back into typed errors, so the wording
// must stay identical on both sides.
package app

// Error texts written into the "error" field of failure envelopes.
const (
	// MsgInternalServerError hides unexpected server-side failures.
	MsgInternalServerError = "Internal server error"

	// MsgDatabaseUnavailable is returned while the server runs without a
	// database connection.
	MsgDatabaseUnavailable = "database unavailable"

	MsgMessageNotFound = "Message not found"
	MsgRouteNotFound   = "Route not found"

	// MsgInvalidCredentials is returned by POST /api/login when the email
	// or password does not match the configured admin.
	MsgInvalidCredentials = "Invalid credentials"

	MsgAccessTokenRequired = "Access token required"
	MsgTokenExpired        = "Token expired"
	MsgTokenInvalid        = "Invalid or expired token"

	MsgNotAllowedByCORS = "Not allowed by CORS"
)

// Confirmation texts written into the "message" field of success envelopes.
const (
	MsgLoginSuccessful   = "Login successful"
	MsgMessageSaved      = "Message saved successfully"
	MsgMessageUpdated    = "Message updated successfully"
	MsgMessagePrinted    = "Message marked as printed"
	MsgMessageDeleted    = "Message deleted successfully"
	MsgMessagesDeletedFn = "%d messages deleted successfully"
)
