package tasklists

import (
	"context"
	"errors"

	"github.com/user/taskhub-go/apperror"
	"github.com/user/taskhub-go/auth"
)

// Service carries the task list business logic. Ownership is asserted here,
// before any mutation reaches the store; reads are deliberately not
// ownership-checked.
type Service struct {
	store Store
}

// NewService creates a new task list Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create makes a new task list owned by the caller. The application-level
// title check lives in the store as a unique index; a collision surfaces as
// a conflict.
func (s *Service) Create(ctx context.Context, user *auth.User, req CreateRequest) (*TaskList, error) {
	list := &TaskList{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   user.ID,
	}
	if err := s.store.Create(ctx, list); err != nil {
		if errors.Is(err, ErrTitleTaken) {
			return nil, apperror.NewConflictError("tasks list with this title already exists", err)
		}
		return nil, apperror.NewDatabaseError("failed to create tasks list", err)
	}
	return list, nil
}

// List returns every non-deleted task list.
func (s *Service) List(ctx context.Context) ([]TaskList, error) {
	lists, err := s.store.List(ctx)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list tasks lists", err)
	}
	return lists, nil
}

// Get returns a task list together with its tasks.
func (s *Service) Get(ctx context.Context, id int) (*Detail, error) {
	list, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrListNotFound) {
			return nil, apperror.NewNotFoundError("tasks list not found", err)
		}
		return nil, apperror.NewDatabaseError("failed to get tasks list", err)
	}
	tasks, err := s.store.ListTasks(ctx, id)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list tasks", err)
	}
	return &Detail{TaskList: list, Tasks: tasks}, nil
}

// Update patches the list's title and description. Only the owner may do so.
func (s *Service) Update(ctx context.Context, user *auth.User, id int, req UpdateRequest) (*TaskList, error) {
	list, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrListNotFound) {
			return nil, apperror.NewNotFoundError("tasks list not found", err)
		}
		return nil, apperror.NewDatabaseError("failed to get tasks list", err)
	}
	if err := auth.AssertOwner(list, user); err != nil {
		return nil, err
	}

	if req.Title != nil {
		list.Title = *req.Title
	}
	if req.Description != nil {
		list.Description = req.Description
	}

	if err := s.store.Update(ctx, list); err != nil {
		switch {
		case errors.Is(err, ErrTitleTaken):
			return nil, apperror.NewConflictError("tasks list with this title already exists", err)
		case errors.Is(err, ErrListNotFound):
			return nil, apperror.NewNotFoundError("tasks list not found", err)
		default:
			return nil, apperror.NewDatabaseError("failed to update tasks list", err)
		}
	}
	return list, nil
}

// Delete soft-deletes the list and its tasks. Only the owner may do so.
func (s *Service) Delete(ctx context.Context, user *auth.User, id int) error {
	list, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrListNotFound) {
			return apperror.NewNotFoundError("tasks list not found", err)
		}
		return apperror.NewDatabaseError("failed to get tasks list", err)
	}
	if err := auth.AssertOwner(list, user); err != nil {
		return err
	}

	if err := s.store.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, ErrListNotFound) {
			return apperror.NewNotFoundError("tasks list not found", err)
		}
		return apperror.NewDatabaseError("failed to delete tasks list", err)
	}
	return nil
}

// CompleteAll marks every task in the list done. The list owner is the
// authoritative owner for every task within it.
func (s *Service) CompleteAll(ctx context.Context, user *auth.User, id int) (int64, error) {
	list, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrListNotFound) {
			return 0, apperror.NewNotFoundError("tasks list not found", err)
		}
		return 0, apperror.NewDatabaseError("failed to get tasks list", err)
	}
	if err := auth.AssertOwner(list, user); err != nil {
		return 0, err
	}

	n, err := s.store.CompleteAll(ctx, id)
	if err != nil {
		return 0, apperror.NewDatabaseError("failed to complete tasks", err)
	}
	return n, nil
}
