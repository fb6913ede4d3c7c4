package tasks

import (
	"context"
	"errors"

	"github.com/user/taskhub-go/apperror"
	"github.com/user/taskhub-go/auth"
)

// Service carries the task business logic. Every mutation authorizes against
// the owning list's creator.
type Service struct {
	store Store
}

// NewService creates a new task Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create makes a new task in a list the caller owns.
func (s *Service) Create(ctx context.Context, user *auth.User, req CreateRequest) (*Task, error) {
	owner, err := s.store.ListOwner(ctx, req.ListID)
	if err != nil {
		if errors.Is(err, ErrListNotFound) {
			return nil, apperror.NewNotFoundError("tasks list not found", err)
		}
		return nil, apperror.NewDatabaseError("failed to get tasks list", err)
	}
	if err := auth.AssertOwnerID(owner, user); err != nil {
		return nil, err
	}

	task := &Task{
		Title:       req.Title,
		Description: req.Description,
		ListID:      req.ListID,
		CreatedBy:   user.ID,
		ListOwnerID: owner,
	}
	if err := s.store.Create(ctx, task); err != nil {
		if errors.Is(err, ErrListNotFound) {
			return nil, apperror.NewNotFoundError("tasks list not found", err)
		}
		return nil, apperror.NewDatabaseError("failed to create task", err)
	}
	return task, nil
}

// Get returns a single task. Reads are not ownership-checked.
func (s *Service) Get(ctx context.Context, id int) (*Task, error) {
	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, apperror.NewNotFoundError("task not found", err)
		}
		return nil, apperror.NewDatabaseError("failed to get task", err)
	}
	return task, nil
}

// getOwned loads the task and asserts the caller owns its list.
func (s *Service) getOwned(ctx context.Context, user *auth.User, id int) (*Task, error) {
	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, apperror.NewNotFoundError("task not found", err)
		}
		return nil, apperror.NewDatabaseError("failed to get task", err)
	}
	if err := auth.AssertOwnerID(task.ListOwnerID, user); err != nil {
		return nil, err
	}
	return task, nil
}

// Update patches the task's title, description or owning list. Moving the
// task requires the caller to own the destination list too.
func (s *Service) Update(ctx context.Context, user *auth.User, id int, req UpdateRequest) (*Task, error) {
	task, err := s.getOwned(ctx, user, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.ListID != nil && *req.ListID != task.ListID {
		owner, err := s.store.ListOwner(ctx, *req.ListID)
		if err != nil {
			if errors.Is(err, ErrListNotFound) {
				return nil, apperror.NewNotFoundError("tasks list not found", err)
			}
			return nil, apperror.NewDatabaseError("failed to get tasks list", err)
		}
		if err := auth.AssertOwnerID(owner, user); err != nil {
			return nil, err
		}
		task.ListID = *req.ListID
		task.ListOwnerID = owner
	}

	if err := s.store.Update(ctx, task); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, apperror.NewNotFoundError("task not found", err)
		}
		return nil, apperror.NewDatabaseError("failed to update task", err)
	}
	return task, nil
}

// MarkDone marks the task done.
func (s *Service) MarkDone(ctx context.Context, user *auth.User, id int) (*Task, error) {
	task, err := s.getOwned(ctx, user, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetDone(ctx, task.ID); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, apperror.NewNotFoundError("task not found", err)
		}
		return nil, apperror.NewDatabaseError("failed to mark task done", err)
	}
	task.Done = true
	return task, nil
}

// Delete soft-deletes the task.
func (s *Service) Delete(ctx context.Context, user *auth.User, id int) error {
	task, err := s.getOwned(ctx, user, id)
	if err != nil {
		return err
	}
	if err := s.store.SoftDelete(ctx, task.ID); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return apperror.NewNotFoundError("task not found", err)
		}
		return apperror.NewDatabaseError("failed to delete task", err)
	}
	return nil
}
