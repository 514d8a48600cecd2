// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/service"
	"github.com/MKhiriev/go-auth-api/internal/utils"
	"github.com/MKhiriev/go-auth-api/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// login authenticates an email/password pair and issues a signed token.
//
// Unknown email and wrong password both produce the same 401 with
// "Invalid email or password" so the endpoint does not reveal which half
// was wrong. Validation problems are reported as a 400 listing every
// failed field at once.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return fmt.Errorf("%w: invalid request body", service.ErrValidation)
	}

	var details []string
	if !emailPattern.MatchString(req.Email) {
		details = append(details, "valid email is required")
	}
	if len(req.Password) < 6 {
		details = append(details, "password must be at least 6 characters")
	}
	if len(details) > 0 {
		return fmt.Errorf("%w: %s", service.ErrValidation, strings.Join(details, ", "))
	}

	user, ok, err := h.services.UserService.ValidateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		return fmt.Errorf("validating credentials: %w", err)
	}
	if !ok {
		_, writeErr := utils.WriteJSON(w, models.Fail(msgInvalidCredentials, ""), http.StatusUnauthorized)
		return writeErr
	}

	token, err := h.services.CredentialService.GenerateToken(r.Context(), models.TokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		return fmt.Errorf("generating token: %w", err)
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.ID).Msg("user logged in")

	_, err = utils.WriteJSON(w, models.OK(models.LoginResponse{
		Token: token,
		User:  user.Public(),
	}, "Login successful"), http.StatusOK)
	return err
}

// register creates a new account and returns its public projection.
// A duplicate email surfaces as an error so the normalization middleware
// can answer 409 with the service's message.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) error {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return fmt.Errorf("%w: invalid request body", service.ErrValidation)
	}

	var details []string
	if len(strings.TrimSpace(req.Name)) < 2 {
		details = append(details, "name must be at least 2 characters")
	}
	if !emailPattern.MatchString(req.Email) {
		details = append(details, "valid email is required")
	}
	if len(req.Password) < 6 {
		details = append(details, "password must be at least 6 characters")
	}
	if len(details) > 0 {
		return fmt.Errorf("%w: %s", service.ErrValidation, strings.Join(details, ", "))
	}

	user, err := h.services.UserService.CreateUser(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.ID).Msg("user registered")

	_, err = utils.WriteJSON(w, models.OK(user.Public(), "User registered successfully"), http.StatusCreated)
	return err
}
