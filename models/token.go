package models

import "github.com/golang-jwt/jwt/v5"

// TokenPayload is the set of identity fields encoded into every issued JWT:
// {id, email, name}. It is derived from a User at issuance time, never
// persisted, and reconstructed on each verification from the signed token.
// Staleness after a profile update is accepted; there is no revocation list.
type TokenPayload struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// TokenClaims is the JWT claim set carried by issued tokens: the standard
// registered claims (exp, iat, iss) plus the identity payload fields.
type TokenClaims struct {
	jwt.RegisteredClaims
	TokenPayload
}

// Payload returns the identity portion of the claims.
func (c *TokenClaims) Payload() TokenPayload {
	return c.TokenPayload
}
