package models

// Admin is the identity of the single board administrator.
// It is what the API exposes as "user" after login or token verification.
type Admin struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
