package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kudos-board/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by GenerateJWTToken when a required
// parameter is empty or zero.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

// ErrInvalidTokenClaims is returned when a token verifies but does not carry
// an admin identity.
var ErrInvalidTokenClaims = errors.New("invalid token claims")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for the admin.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the admin email
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - email, role: the public admin identity
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("kudos-board", admin, 24*time.Hour, "secret")
func GenerateJWTToken(issuer string, admin models.Admin, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || admin.Email == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	role := admin.Role
	if role == "" {
		role = models.RoleAdmin
	}

	now := time.Now()
	claims := &models.Claims{
		Email: admin.Email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   admin.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - signing method restricted to HS256
//   - signature verification using the provided sign key
//   - issuer (iss) claim check against tokenIssuer
//   - expiration (exp) claim check
//   - presence of the email claim
//
// Expiry is reported through [jwt.ErrTokenExpired] in the wrapped chain so
// callers can tell it apart from other failures with errors.Is.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Email == "" {
		return models.Token{}, ErrInvalidTokenClaims
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}
