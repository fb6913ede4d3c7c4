package tasklists

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/taskhub-go/apperror"
	"github.com/user/taskhub-go/auth"
)

// Handlers exposes the task list operations over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

func listIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "listID"))
	if err != nil {
		return 0, apperror.NewValidationError("list id must be an integer", err)
	}
	return id, nil
}

// requireUser pulls the identity the access gate stored in the context.
func requireUser(w http.ResponseWriter, r *http.Request) (*auth.User, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
		return nil, false
	}
	return user, true
}

// HandleCreate godoc
// @Summary Create a task list
// @Tags tasks-lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body tasklists.CreateRequest true "Task list details"
// @Success 201 {object} tasklists.TaskList
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid credential"
// @Failure 409 {object} apperror.ErrorResponse "Duplicate title"
// @Router /tasks-lists [post]
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewValidationError("invalid request body", err))
			return
		}
		defer r.Body.Close()
		if req.Title == "" {
			auth.WriteError(w, r, apperror.NewValidationError("title is required", nil))
			return
		}

		list, err := h.service.Create(r.Context(), user, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusCreated, list)
	}
}

// HandleList godoc
// @Summary List task lists
// @Tags tasks-lists
// @Produce json
// @Security BearerAuth
// @Success 200 {array} tasklists.TaskList
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid credential"
// @Router /tasks-lists [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lists, err := h.service.List(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, lists)
	}
}

// HandleGet godoc
// @Summary Get a task list with its tasks
// @Description Single-resource reads are open: no credential is required.
// @Tags tasks-lists
// @Produce json
// @Param listID path int true "Task list ID"
// @Success 200 {object} tasklists.Detail
// @Failure 404 {object} apperror.ErrorResponse "Task list not found"
// @Router /tasks-lists/{listID} [get]
func (h *Handlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := listIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		detail, err := h.service.Get(r.Context(), id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, detail)
	}
}

// HandleUpdate godoc
// @Summary Update a task list
// @Tags tasks-lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listID path int true "Task list ID"
// @Param body body tasklists.UpdateRequest true "Fields to change"
// @Success 200 {object} tasklists.TaskList
// @Failure 403 {object} apperror.ErrorResponse "Not the owner"
// @Failure 404 {object} apperror.ErrorResponse "Task list not found"
// @Failure 409 {object} apperror.ErrorResponse "Duplicate title"
// @Router /tasks-lists/{listID} [patch]
func (h *Handlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}
		id, err := listIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		var req UpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewValidationError("invalid request body", err))
			return
		}
		defer r.Body.Close()
		if req.Title != nil && *req.Title == "" {
			auth.WriteError(w, r, apperror.NewValidationError("title must not be empty", nil))
			return
		}

		list, err := h.service.Update(r.Context(), user, id, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, list)
	}
}

// HandleDelete godoc
// @Summary Delete a task list
// @Description Soft-deletes the list and every task in it.
// @Tags tasks-lists
// @Produce json
// @Security BearerAuth
// @Param listID path int true "Task list ID"
// @Success 204 "Deleted"
// @Failure 403 {object} apperror.ErrorResponse "Not the owner"
// @Failure 404 {object} apperror.ErrorResponse "Task list not found"
// @Router /tasks-lists/{listID} [delete]
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}
		id, err := listIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		if err := h.service.Delete(r.Context(), user, id); err != nil {
			auth.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleCompleteAll godoc
// @Summary Mark every task in a list done
// @Tags tasks-lists
// @Produce json
// @Security BearerAuth
// @Param listID path int true "Task list ID"
// @Success 200 {object} tasklists.CompleteAllResponse
// @Failure 403 {object} apperror.ErrorResponse "Not the owner"
// @Failure 404 {object} apperror.ErrorResponse "Task list not found"
// @Router /tasks-lists/{listID}/complete-all [post]
func (h *Handlers) HandleCompleteAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}
		id, err := listIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		n, err := h.service.CompleteAll(r.Context(), user, id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, CompleteAllResponse{Completed: n})
	}
}
