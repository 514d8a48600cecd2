// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/utils"
	"github.com/MKhiriev/go-auth-api/models"
)

// withAuth is the authentication gate. It extracts the bearer token from the
// Authorization header, verifies it through the credential service and
// records the verified identity in the request metadata so downstream
// handlers (and the outer logging middleware) can see who made the call.
//
// Rejections are written directly as 401 envelopes and the inner chain is
// never invoked. The three rejection messages are fixed:
//   - missing header / wrong scheme: "Authorization token is required"
//   - verification says no:          "Invalid or expired token"
//   - verification blew up:          "Authentication failed"
func (h *Handler) withAuth(next apiFunc) apiFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		tokenString, ok := utils.ExtractBearerToken(r.Header.Get("Authorization"))
		if !ok {
			_, _ = utils.WriteJSON(w, models.Fail(msgTokenRequired, ""), http.StatusUnauthorized)
			return nil
		}

		payload, valid, err := h.verifyToken(r.Context(), tokenString)
		if err != nil {
			logger.FromRequest(r).Error().Err(err).Msg("token verification failed unexpectedly")
			_, _ = utils.WriteJSON(w, models.Fail(msgAuthFailed, ""), http.StatusUnauthorized)
			return nil
		}
		if !valid {
			_, _ = utils.WriteJSON(w, models.Fail(msgInvalidOrExpired, ""), http.StatusUnauthorized)
			return nil
		}

		meta, ok := utils.GetRequestMeta(r.Context())
		if !ok {
			// The logging middleware normally attaches metadata before the
			// gate runs; cover the bare case so identity is still available.
			meta = &utils.RequestMeta{}
			r = r.WithContext(utils.WithRequestMeta(r.Context(), meta))
		}
		meta.SetUser(payload)

		return next(w, r)
	}
}

// verifyToken calls the credential service with a recover guard so that a
// panicking verifier is reported as an error rather than tearing down the
// request before the gate can answer.
func (h *Handler) verifyToken(ctx context.Context, tokenString string) (payload models.TokenPayload, valid bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			payload, valid = models.TokenPayload{}, false
			err = fmt.Errorf("token verification panicked: %v", rec)
		}
	}()

	payload, valid = h.services.CredentialService.VerifyToken(ctx, tokenString)
	return payload, valid, nil
}
