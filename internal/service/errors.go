package service

import "errors"

// Sentinel errors returned by the service layer. Services never format HTTP
// responses; the error-normalization middleware at the transport boundary
// derives status codes from these values and from their message text.
//
// The message literals are load-bearing: the boundary classifies errors by
// substring ("Validation" → 400, "Not found" → 404, "Unauthorized" → 401,
// "Forbidden" → 403), so the capitalised trigger words below must be
// preserved verbatim.
var (
	// ErrValidation indicates malformed or missing input.
	ErrValidation = errors.New("Validation failed")

	// ErrUserNotFound indicates a lookup for a user that does not exist.
	// Wrap it with detail, e.g. fmt.Errorf("%w: user with id %d", ...).
	ErrUserNotFound = errors.New("Not found")

	// ErrEmailAlreadyExists indicates a registration or email change that
	// collides with an existing account.
	ErrEmailAlreadyExists = errors.New("User with this email already exists")
)
