package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/utils"
	"github.com/MKhiriev/go-auth-api/models"
)

// credentialService is the concrete implementation of [CredentialService].
// It hashes passwords with bcrypt and signs JWT tokens with HMAC-SHA256.
type credentialService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the bcrypt cost factor for password hashing.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewCredentialService constructs a [CredentialService] populated with
// security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction. If the insecure fallback signing secret is in effect
// a warning is logged; the fallback is kept for compatibility, not as an
// endorsement.
func NewCredentialService(cfg config.App, logger *logger.Logger) CredentialService {
	if cfg.UsesDefaultSignKey() {
		logger.Warn().Msg("token sign key is the insecure built-in default; set APP_TOKEN_SIGN_KEY in any real deployment")
	}

	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &credentialService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		bcryptCost:    cost,
		logger:        logger,
	}
}

// HashPassword derives a salted bcrypt hash of the plaintext password.
// The result is one-way; the plaintext is never stored anywhere.
func (c *credentialService) HashPassword(ctx context.Context, plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), c.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword reports whether plaintext matches hash. Mismatch is not
// an error; only library-level faults (e.g. a corrupted hash) are.
func (c *credentialService) ComparePassword(ctx context.Context, plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("error comparing password: %w", err)
}

// GenerateToken issues a signed JWT carrying the identity payload.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (c *credentialService) GenerateToken(ctx context.Context, payload models.TokenPayload) (string, error) {
	token, err := utils.GenerateJWTToken(c.tokenIssuer, payload, c.tokenDuration, c.tokenSignKey)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}

// VerifyToken validates and parses a raw JWT string.
//
// Any validation failure (expired, bad signature, wrong issuer, malformed)
// is normalised to ok == false so that callers cannot inspect low-level JWT
// errors; an attacker observing responses learns nothing about why a token
// was rejected.
func (c *credentialService) VerifyToken(ctx context.Context, tokenString string) (models.TokenPayload, bool) {
	payload, err := utils.ValidateAndParseJWTToken(tokenString, c.tokenSignKey, c.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token verification failed")
		return models.TokenPayload{}, false
	}

	return payload, true
}
