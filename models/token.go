package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role the board issues tokens for.
const RoleAdmin = "admin"

// Claims is the JWT claim set carried by admin tokens.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (iss, sub, exp,
// iat) and adds the admin identity exposed by GET /api/verify-token.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`

	jwt.RegisteredClaims
}

// User returns the public identity encoded in the claims.
func (c *Claims) User() Admin {
	return Admin{Email: c.Email, Role: c.Role}
}

// Token wraps a JWT token with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims are the decoded claims. Populated after parsing or issuing.
	Claims *Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
