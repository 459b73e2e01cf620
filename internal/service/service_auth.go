package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"golang.org/x/crypto/bcrypt"
)

// authService authenticates the single configured administrator and issues
// and verifies the bearer tokens the auth interceptor checks.
type authService struct {
	// adminLogin and adminPasswordHash identify the only account that can
	// log in. The hash is a bcrypt hash.
	adminLogin        string
	adminPasswordHash []byte

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	validator validators.Validator
	logger    *logger.Logger
}

// NewAuthService constructs an AuthService populated with the admin account
// and token parameters from cfg. The returned service is safe for concurrent
// use; all state is read-only after construction.
func NewAuthService(cfg config.App, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		adminLogin:        cfg.AdminLogin,
		adminPasswordHash: []byte(cfg.AdminPasswordHash),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		validator:         validator,
		logger:            logger,
	}
}

// Login checks credentials against the configured admin account and issues
// a signed token.
//
// Returns:
//   - ErrInvalidDataProvided if login or password is empty.
//   - ErrWrongCredentials if either of them does not match.
//   - ErrTokenCreationFailed if the token cannot be signed.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// the password is always checked so that a wrong login costs as much as
	// a wrong password
	loginOK := subtle.ConstantTimeCompare([]byte(credentials.Login), []byte(a.adminLogin)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(a.adminPasswordHash, []byte(credentials.Password))
	if !loginOK || passwordErr != nil {
		log.Warn().Str("login", credentials.Login).Msg("admin login failed")
		return models.Token{}, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.adminLogin, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("failed to create admin token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("login", a.adminLogin).Msg("admin logged in")
	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong subject, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if token.Subject != a.adminLogin {
		logger.FromContext(ctx).Warn().Str("subject", token.Subject).Msg("token issued for unknown subject")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
