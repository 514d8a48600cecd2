// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and request identifier generation.
package utils

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestMetaCtxKey is the key used to store the per-request metadata holder
// in the context.
var RequestMetaCtxKey = contextKey("requestMeta")

// RequestMeta is the per-request transient state created by the logging
// middleware at pipeline entry and discarded after the response is sent.
//
// It is stored in the context as a pointer so that middleware deeper in the
// chain (the authentication gate) can record the authenticated identity in a
// way the outer logging middleware observes when the request completes.
// A single request is handled by one goroutine end-to-end, so no locking is
// required.
type RequestMeta struct {
	// RequestID uniquely identifies the request across log entries.
	RequestID string

	// Start is the pipeline entry timestamp used to compute elapsed time.
	Start time.Time

	user          models.TokenPayload
	authenticated bool
}

// SetUser records the verified token payload after the authentication gate
// accepts the request.
func (m *RequestMeta) SetUser(payload models.TokenPayload) {
	m.user = payload
	m.authenticated = true
}

// User returns the verified token payload and whether the authentication
// gate ran for this request.
func (m *RequestMeta) User() (models.TokenPayload, bool) {
	return m.user, m.authenticated
}

// UserID returns the authenticated user's ID, or zero for anonymous requests.
func (m *RequestMeta) UserID() int64 {
	if !m.authenticated {
		return 0
	}
	return m.user.UserID
}

// WithRequestMeta returns a copy of ctx carrying the given metadata holder.
func WithRequestMeta(ctx context.Context, meta *RequestMeta) context.Context {
	return context.WithValue(ctx, RequestMetaCtxKey, meta)
}

// GetRequestMeta retrieves the per-request metadata holder from the context.
//
// Returns the holder and an ok flag:
//   - ok == true  — the logging middleware ran and attached metadata
//   - ok == false — the request bypassed the pipeline (e.g. bare tests)
func GetRequestMeta(ctx context.Context) (*RequestMeta, bool) {
	meta, ok := ctx.Value(RequestMetaCtxKey).(*RequestMeta)
	return meta, ok
}

// GetTokenPayload retrieves the authenticated identity attached by the
// authentication gate.
//
// Example usage:
//
//	payload, ok := utils.GetTokenPayload(ctx)
//	if !ok {
//	    // handle missing identity
//	}
func GetTokenPayload(ctx context.Context) (models.TokenPayload, bool) {
	meta, ok := GetRequestMeta(ctx)
	if !ok {
		return models.TokenPayload{}, false
	}
	return meta.User()
}
