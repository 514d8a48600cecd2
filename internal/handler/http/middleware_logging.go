package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/utils"
)

// withLogging is the request-logging middleware. It runs outermost in both
// preset chains.
//
// On entry it generates a request id (UUIDv7: timestamp plus random suffix)
// and a start timestamp, stores both in a [utils.RequestMeta] holder on the
// request context, and attaches a request-scoped child logger carrying the
// request id. It then wraps the response writer so the status code and
// body size can be observed after the inner chain returns, and finally
// emits exactly one log entry per request: method, path, status, elapsed
// time, response size, user agent, client address, and the authenticated
// user id when the auth gate ran deeper in the chain.
func (h *Handler) withLogging(next apiFunc) apiFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		meta := &utils.RequestMeta{
			RequestID: h.uuid.Generate(),
			Start:     time.Now(),
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", meta.RequestID)
		})

		ctx := utils.WithRequestMeta(r.Context(), meta)
		r = r.WithContext(l.WithContext(ctx))

		lw := &responseWriter{
			ResponseWriter: w,
		}

		err := next(lw, r)

		l.LogRequest(logger.RequestEntry{
			RequestID: meta.RequestID,
			Method:    r.Method,
			Path:      r.URL.Path,
			Status:    lw.Status(),
			Duration:  time.Since(meta.Start),
			Size:      lw.size,
			UserAgent: r.UserAgent(),
			ClientIP:  clientIP(r),
			UserID:    meta.UserID(),
		})

		return err
	}
}

// clientIP resolves the caller's address, preferring the first
// X-Forwarded-For hop over the raw connection address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if i := strings.IndexByte(forwarded, ','); i >= 0 {
			return strings.TrimSpace(forwarded[:i])
		}
		return strings.TrimSpace(forwarded)
	}
	return r.RemoteAddr
}
