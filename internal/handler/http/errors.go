package http

// User-facing message literals written into failure envelopes.
//
// These strings are part of the external API contract and are asserted on by
// clients; change them only together with the consumers.
const (
	msgTokenRequired       = "Authorization token is required"
	msgInvalidOrExpired    = "Invalid or expired token"
	msgAuthFailed          = "Authentication failed"
	msgInvalidCredentials  = "Invalid email or password"
	msgInternalServerError = "Internal server error"
	msgMethodNotAllowed    = "Method %s not allowed"
)
