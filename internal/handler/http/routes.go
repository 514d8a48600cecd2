package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-auth-api/internal/utils"
	"github.com/MKhiriev/go-auth-api/models"
)

// Init registers every route on a fresh chi router.
//
// The router dispatches per method, so withMethodValidation inside each
// preset never fires through normal routing; the MethodNotAllowed handler
// below keeps the 405 envelope identical whichever path rejects the method.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w,
			models.Fail(fmt.Sprintf(msgMethodNotAllowed, r.Method), ""),
			http.StatusMethodNotAllowed)
	})

	router.Route("/api", func(api chi.Router) {
		api.Post("/login", h.basic(h.login, http.MethodPost))
		api.Post("/register", h.basic(h.register, http.MethodPost))

		api.Get("/profile", h.authenticated(h.profile, http.MethodGet))

		api.Get("/users", h.authenticated(h.listUsers, http.MethodGet))
		api.Put("/users/{id}", h.authenticated(h.updateUser, http.MethodPut))
		api.Delete("/users/{id}", h.authenticated(h.deleteUser, http.MethodDelete))
	})

	return router
}
