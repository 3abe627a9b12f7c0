package models

// Response is the uniform JSON envelope written by every endpoint.
//
// Success is always present; the remaining fields are omitted when empty so
// that each route only carries what it documents (data, count, token, ...).
type Response struct {
	// Success reports whether the request was handled without error.
	Success bool `json:"success"`

	// Message is an optional human-readable confirmation.
	Message string `json:"message,omitempty"`

	// Error is the failure description. Set only when Success is false.
	Error string `json:"error,omitempty"`

	// Count is the number of rows returned or affected.
	Count *int64 `json:"count,omitempty"`

	// Data is the route-specific payload.
	Data any `json:"data,omitempty"`

	// Token is the signed admin token returned by login.
	Token string `json:"token,omitempty"`

	// User is the admin identity returned by login and token verification.
	User *Admin `json:"user,omitempty"`
}

// MessagesResponse is the decoded form of a list envelope. Used by the
// print station when reading the board API.
type MessagesResponse struct {
	Success bool      `json:"success"`
	Count   int64     `json:"count"`
	Data    []Message `json:"data"`
	Error   string    `json:"error,omitempty"`
}

// MessageResponse is the decoded form of a single-message envelope.
type MessageResponse struct {
	Success bool    `json:"success"`
	Data    Message `json:"data"`
	Error   string  `json:"error,omitempty"`
}

// LoginResponse is the decoded form of the login envelope.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    Admin  `json:"user"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse is the decoded form of a failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
