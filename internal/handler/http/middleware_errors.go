package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/service"
	"github.com/MKhiriev/go-auth-api/internal/utils"
	"github.com/MKhiriev/go-auth-api/models"
)

// withErrorHandling is the error-normalization middleware. It is the only
// place in the transport layer where errors become HTTP responses: terminal
// handlers and services return plain error values with descriptive
// messages, and this middleware converts them into a failure envelope.
//
// The status code is derived from the error's message text by substring
// match ("Validation" 400, "Not found" 404, "Unauthorized" 401,
// "Forbidden" 403), with [service.ErrEmailAlreadyExists] mapped to 409
// via the sentinel and anything else treated as 500. The trigger words are
// part of the external behaviour and must be preserved verbatim.
//
// In production mode the error text is replaced with a generic
// "Internal server error" so internals never leak; the status code is still
// derived from the real error. Panics from deeper in the chain are caught
// here and always produce a generic 500.
func (h *Handler) withErrorHandling(next apiFunc) apiFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		log := logger.FromRequest(r)

		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Any("panic", rec).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("panic recovered in handler chain")
				_, _ = utils.WriteJSON(w, models.Fail(msgInternalServerError, ""), http.StatusInternalServerError)
			}
		}()

		err := next(w, r)
		if err == nil {
			return nil
		}

		meta, _ := utils.GetRequestMeta(r.Context())
		evt := log.Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path)
		if meta != nil {
			evt = evt.Str("request_id", meta.RequestID)
			if userID := meta.UserID(); userID != 0 {
				evt = evt.Int64("user_id", userID)
			}
		}
		evt.Msg("request failed")

		message := err.Error()
		if h.app.IsProduction() {
			message = msgInternalServerError
		}

		_, _ = utils.WriteJSON(w, models.Fail(message, ""), statusFromError(err))
		return nil
	}
}

// statusFromError maps an error to an HTTP status code.
//
// Sentinel values are checked with errors.Is first; everything else falls
// back to the substring contract on the message text. Reimplementations
// must keep the exact trigger substrings: "Validation", "Not found",
// "Unauthorized", "Forbidden".
func statusFromError(err error) int {
	if errors.Is(err, service.ErrEmailAlreadyExists) {
		return http.StatusConflict
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "Validation"):
		return http.StatusBadRequest
	case strings.Contains(msg, "Not found"):
		return http.StatusNotFound
	case strings.Contains(msg, "Unauthorized"):
		return http.StatusUnauthorized
	case strings.Contains(msg, "Forbidden"):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
