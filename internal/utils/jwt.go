package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// bearerPrefix is the exact scheme prefix expected in Authorization headers.
const bearerPrefix = "Bearer "

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token carrying the given
// identity payload.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - id, email, name: the identity payload fields
//
// All parameters are required. Returns an error if issuer or signKey are
// empty or tokenDuration is zero, or if signing fails.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("my-service", payload, time.Hour, "secret")
func GenerateJWTToken(issuer string, payload models.TokenPayload, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		TokenPayload: payload,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its identity payload.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//
// Returns the identity payload, or a non-nil error if validation fails for
// any reason (malformed, expired, bad signature, wrong issuer). The error
// does not distinguish expiry from signature failure.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.TokenPayload, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.TokenPayload{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return claims.Payload(), nil
}

// ExtractBearerToken extracts the token from a raw "Authorization" HTTP
// header value.
//
// The header must be exactly the scheme prefix "Bearer " followed by the
// token. An absent header, a different scheme, or a missing space all yield
// ok == false. A header that is exactly "Bearer " yields the empty string
// with ok == true; the empty token then fails verification downstream.
func ExtractBearerToken(authorizationHeader string) (string, bool) {
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return "", false
	}
	return authorizationHeader[len(bearerPrefix):], true
}
