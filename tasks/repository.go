package tasks

import (
	"context"
	"errors"
)

// Sentinel errors returned by Store implementations.
var (
	// ErrTaskNotFound is returned when no matching non-deleted task exists.
	ErrTaskNotFound = errors.New("task not found")
	// ErrListNotFound is returned when a referenced task list does not exist.
	ErrListNotFound = errors.New("tasks list not found")
)

// Store is the persistence collaborator for tasks. Implementations never
// return soft-deleted rows.
type Store interface {
	// Create persists a new task, filling in the generated ID and timestamps.
	// Returns ErrListNotFound when the target list does not exist.
	Create(ctx context.Context, task *Task) error
	// GetByID returns the task with its owning list's creator populated in
	// ListOwnerID, or ErrTaskNotFound.
	GetByID(ctx context.Context, id int) (*Task, error)
	// ListOwner returns the creator of the non-deleted list, or ErrListNotFound.
	ListOwner(ctx context.Context, listID int) (int, error)
	// Update persists title, description and list changes.
	Update(ctx context.Context, task *Task) error
	// SetDone marks the task done.
	SetDone(ctx context.Context, id int) error
	// SoftDelete marks the task deleted.
	SoftDelete(ctx context.Context, id int) error
}
