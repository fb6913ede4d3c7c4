package auth

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/taskhub-go/apperror"
)

// Handlers exposes the auth operations over HTTP.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary User registration
// @Description Registers a new, unconfirmed user and seeds their default task list.
// @Tags users
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 201 {object} auth.RegisterResponse "User created; the response carries the confirmation token"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input or mismatched passwords"
// @Failure 409 {object} apperror.ErrorResponse "Username or seeded list title already exists"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /users/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewValidationError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if req.Username == "" || req.Password == "" || req.ConfirmPassword == "" {
			WriteError(w, r, apperror.NewValidationError("username, password, and confirm_password are required", nil))
			return
		}

		user, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		// The confirmation token is handed back here; clients present it to
		// the confirm endpoint to activate the account.
		WriteJSON(w, http.StatusCreated, RegisterResponse{
			ID:                user.ID,
			Username:          user.Username,
			Confirmed:         user.Confirmed,
			ConfirmationToken: user.ConfirmationToken,
			CreatedAt:         user.CreatedAt,
		})
	}
}

// HandleConfirm godoc
// @Summary Confirm a user account
// @Description Confirms the account holding the confirmation token. Repeat confirmations report 208 without changing state.
// @Tags users
// @Produce json
// @Param token path string true "Confirmation token"
// @Success 202 {object} auth.ConfirmResponse "User confirmed"
// @Success 208 {object} auth.ConfirmResponse "User already confirmed"
// @Failure 404 {object} apperror.ErrorResponse "No user holds this token"
// @Router /users/confirm/{token} [post]
func (h *Handlers) HandleConfirm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")
		if token == "" {
			WriteError(w, r, apperror.NewValidationError("confirmation token is required", nil))
			return
		}

		status, user, err := h.service.Confirm(r.Context(), token)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		switch status {
		case StatusAlreadyConfirmed:
			WriteJSON(w, http.StatusAlreadyReported, ConfirmResponse{Message: "user already confirmed"})
		default:
			WriteJSON(w, http.StatusAccepted, ConfirmResponse{Message: fmt.Sprintf("user %s confirmed", user.Username)})
		}
	}
}

// HandleAuthenticate godoc
// @Summary Authenticate
// @Description Verifies username and password and returns a bearer credential.
// @Tags users
// @Accept json
// @Produce json
// @Param authBody body auth.AuthenticateRequest true "User credentials"
// @Success 200 {object} auth.TokenResponse "Bearer credential issued"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 401 {object} apperror.ErrorResponse "Invalid credentials or unconfirmed user"
// @Router /users/auth [post]
func (h *Handlers) HandleAuthenticate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AuthenticateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewValidationError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if req.Username == "" || req.Password == "" {
			WriteError(w, r, apperror.NewValidationError("username and password are required", nil))
			return
		}

		resp, err := h.service.Authenticate(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}

// WriteJSON serializes data to JSON and writes it with the given status.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError converts any error into a standardized apperror response.
// Errors that are not AppErrors are wrapped as internal errors with a
// generic message so no internal detail leaks to clients.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
