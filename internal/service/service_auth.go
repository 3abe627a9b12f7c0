package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kudos-board/internal/config"
	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/utils"
	"github.com/MKhiriev/go-kudos-board/internal/validators"
	"github.com/MKhiriev/go-kudos-board/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// The board has a single administrator whose credentials come from the
// configuration; there is no user table.
type authService struct {
	adminEmail    string
	adminPassword string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	validator validators.Validator
	logger    *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the admin
// identity and token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminEmail:    cfg.AdminEmail,
		adminPassword: cfg.AdminPassword,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		validator:     validators.NewMessageValidator(),
		logger:        logger,
	}
}

// Login checks the request against the configured admin credentials.
//
// Returns the admin identity or:
//   - ErrInvalidDataProvided if the email or the password is empty.
//   - ErrWrongCredentials if either does not match. A missing configured
//     password never matches.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Admin, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("func", "authService.Login").Msg("invalid login data provided")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if request.Email != a.adminEmail || !utils.ComparePassword(a.adminPassword, request.Password) {
		log.Warn().Str("func", "authService.Login").Str("email", request.Email).Msg("wrong credentials")
		return models.Admin{}, ErrWrongCredentials
	}

	return models.Admin{Email: a.adminEmail, Role: models.RoleAdmin}, nil
}

// CreateToken issues a signed JWT for the admin.
func (a *authService) CreateToken(ctx context.Context, admin models.Admin) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, admin, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.CreateToken").Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An expired token yields ErrTokenIsExpired; every other failure (bad
// signature, wrong issuer or method, malformed input) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
