package http

import "net/http"

// apiFunc is the shape of every terminal route handler in this package.
// Handlers return errors instead of writing error responses themselves;
// only the error-normalization middleware converts errors into HTTP
// responses, so lower layers never format transport-level output.
type apiFunc func(w http.ResponseWriter, r *http.Request) error

// Middleware wraps an apiFunc to add a cross-cutting behavior before,
// after, or around its invocation.
type Middleware func(apiFunc) apiFunc

// Compose reduces the given middlewares right-to-left into a single
// wrapper: the last-listed middleware sits closest to the terminal handler
// and the first-listed one runs outermost.
//
//	Compose(a, b, c)(h) == a(b(c(h)))
func Compose(middlewares ...Middleware) Middleware {
	return func(handler apiFunc) apiFunc {
		wrapped := handler
		for i := len(middlewares) - 1; i >= 0; i-- {
			wrapped = middlewares[i](wrapped)
		}
		return wrapped
	}
}

// basic is the preset chain for unauthenticated endpoints:
// request logging outermost, then error normalization, then method
// validation closest to the terminal handler.
func (h *Handler) basic(fn apiFunc, methods ...string) http.HandlerFunc {
	return adapt(Compose(h.withLogging, h.withErrorHandling, h.withMethodValidation(methods...))(fn))
}

// authenticated is the preset chain for endpoints that require a verified
// identity: like basic, with the authentication gate between error
// normalization and method validation. Because the gate runs before the
// in-chain method check, a bare-mounted chain answers a wrong-method
// request carrying a bad token with 401, not 405. The router registers
// every chain per method and installs a MethodNotAllowed handler
// (routes.go), so in practice a wrong-method request never reaches the
// chain and the in-chain check is a second line of defense.
func (h *Handler) authenticated(fn apiFunc, methods ...string) http.HandlerFunc {
	return adapt(Compose(h.withLogging, h.withErrorHandling, h.withAuth, h.withMethodValidation(methods...))(fn))
}

// adapt converts a fully composed apiFunc into a stdlib handler. The
// outermost preset middlewares never propagate an error, so the returned
// value is intentionally dropped.
func adapt(fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = fn(w, r)
	}
}
