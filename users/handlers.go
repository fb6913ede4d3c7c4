package users

import (
	"net/http"

	"github.com/user/taskhub-go/apperror"
	"github.com/user/taskhub-go/auth"
)

// Handlers exposes the user read endpoints over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleList godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} auth.User
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /users [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.service.List(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, list)
	}
}

// HandleProfile godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.User
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid credential"
// @Router /users/me [get]
func (h *Handlers) HandleProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}
		auth.WriteJSON(w, http.StatusOK, user)
	}
}
