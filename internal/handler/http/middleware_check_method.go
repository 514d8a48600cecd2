package http

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/MKhiriev/go-auth-api/internal/utils"
	"github.com/MKhiriev/go-auth-api/models"
)

// withMethodValidation rejects requests whose method is not in the allowed
// set with a 405 envelope. The router already dispatches per method, so in
// normal operation this is a belt check; it matters when a handler is
// mounted without the router (tests, embedding).
func (h *Handler) withMethodValidation(methods ...string) Middleware {
	return func(next apiFunc) apiFunc {
		return func(w http.ResponseWriter, r *http.Request) error {
			if !slices.Contains(methods, r.Method) {
				_, _ = utils.WriteJSON(w,
					models.Fail(fmt.Sprintf(msgMethodNotAllowed, r.Method), ""),
					http.StatusMethodNotAllowed)
				return nil
			}
			return next(w, r)
		}
	}
}
