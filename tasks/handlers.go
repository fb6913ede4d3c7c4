package tasks

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/taskhub-go/apperror"
	"github.com/user/taskhub-go/auth"
)

// Handlers exposes the task operations over HTTP. Every route is protected;
// the access gate middleware runs before any of these.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

func taskIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "taskID"))
	if err != nil {
		return 0, apperror.NewValidationError("task id must be an integer", err)
	}
	return id, nil
}

func requireUser(w http.ResponseWriter, r *http.Request) (*auth.User, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
		return nil, false
	}
	return user, true
}

// HandleCreate godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body tasks.CreateRequest true "Task details"
// @Success 201 {object} tasks.Task
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 403 {object} apperror.ErrorResponse "Caller does not own the list"
// @Failure 404 {object} apperror.ErrorResponse "Task list not found"
// @Router /tasks [post]
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
		if req.Title == "" || req.ListID == 0 {
			auth.WriteError(w, r, apperror.NewValidationError("title and list_id are required", nil))
			return
		}

		task, err := h.service.Create(r.Context(), user, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusCreated, task)
	}
}

// HandleGet godoc
// @Summary Get a task
// @Description Returns a single task. Requires authentication but is not ownership-checked: any authenticated user may read any task.
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param taskID path int true "Task ID"
// @Success 200 {object} tasks.Task
// @Failure 404 {object} apperror.ErrorResponse "Task not found"
// @Router /tasks/{taskID} [get]
func (h *Handlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := taskIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		task, err := h.service.Get(r.Context(), id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, task)
	}
}

// HandleUpdate godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskID path int true "Task ID"
// @Param body body tasks.UpdateRequest true "Fields to change"
// @Success 200 {object} tasks.Task
// @Failure 403 {object} apperror.ErrorResponse "Caller does not own the list"
// @Failure 404 {object} apperror.ErrorResponse "Task not found"
// @Router /tasks/{taskID} [patch]
func (h *Handlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}
		id, err := taskIDParam(r)
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

		task, err := h.service.Update(r.Context(), user, id, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, task)
	}
}

// HandleMarkDone godoc
// @Summary Mark a task done
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param taskID path int true "Task ID"
// @Success 200 {object} tasks.Task
// @Failure 403 {object} apperror.ErrorResponse "Caller does not own the list"
// @Failure 404 {object} apperror.ErrorResponse "Task not found"
// @Router /tasks/{taskID}/done [patch]
func (h *Handlers) HandleMarkDone() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}
		id, err := taskIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		task, err := h.service.MarkDone(r.Context(), user, id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, task)
	}
}

// HandleDelete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param taskID path int true "Task ID"
// @Success 204 "Deleted"
// @Failure 403 {object} apperror.ErrorResponse "Caller does not own the list"
// @Failure 404 {object} apperror.ErrorResponse "Task not found"
// @Router /tasks/{taskID} [delete]
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}
		id, err := taskIDParam(r)
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
