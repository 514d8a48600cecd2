// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-auth-api/internal/service"
	"github.com/MKhiriev/go-auth-api/internal/utils"
	"github.com/MKhiriev/go-auth-api/models"
)

// profile returns the authenticated user's own record, resolved fresh from
// the store rather than echoed from the token, so renamed or deleted
// accounts are reflected immediately.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) error {
	payload, ok := utils.GetTokenPayload(r.Context())
	if !ok {
		return fmt.Errorf("Unauthorized: missing authenticated identity")
	}

	user, err := h.services.UserService.GetUserByID(r.Context(), payload.UserID)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.OK(user.Public(), ""), http.StatusOK)
	return err
}

// listUsers returns the public projection of every registered user.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.services.UserService.GetAllUsers(r.Context())
	if err != nil {
		return err
	}

	public := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}

	_, err = utils.WriteJSON(w, models.OK(public, ""), http.StatusOK)
	return err
}

// updateUser changes the name and/or email of the user in the path.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) error {
	id, err := userIDFromPath(r)
	if err != nil {
		return err
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		return fmt.Errorf("%w: invalid request body", service.ErrValidation)
	}
	if update.Email != nil && !emailPattern.MatchString(*update.Email) {
		return fmt.Errorf("%w: valid email is required", service.ErrValidation)
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), id, update)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.OK(user.Public(), "User updated successfully"), http.StatusOK)
	return err
}

// deleteUser removes the user in the path.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) error {
	id, err := userIDFromPath(r)
	if err != nil {
		return err
	}

	if err := h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.OK(nil, "User deleted successfully"), http.StatusOK)
	return err
}

func userIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: user id must be a positive integer", service.ErrValidation)
	}
	return id, nil
}
