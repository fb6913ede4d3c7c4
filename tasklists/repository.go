package tasklists

import (
	"context"
	"errors"
)

// Sentinel errors returned by Store implementations.
var (
	// ErrListNotFound is returned when no matching non-deleted list exists.
	ErrListNotFound = errors.New("tasks list not found")
	// ErrTitleTaken is returned when a title collides with a non-deleted list.
	ErrTitleTaken = errors.New("tasks list with this title already exists")
)

// Store is the persistence collaborator for task lists. Implementations
// never return soft-deleted rows.
type Store interface {
	// Create persists a new list, filling in the generated ID and timestamps.
	// Returns ErrTitleTaken on a title collision.
	Create(ctx context.Context, list *TaskList) error
	// GetByID returns the list with the given ID, or ErrListNotFound.
	GetByID(ctx context.Context, id int) (*TaskList, error)
	// List returns all non-deleted lists.
	List(ctx context.Context) ([]TaskList, error)
	// ListTasks returns the non-deleted tasks belonging to the list.
	ListTasks(ctx context.Context, listID int) ([]TaskItem, error)
	// Update persists title/description changes. Returns ErrTitleTaken on a
	// title collision and ErrListNotFound when the list vanished.
	Update(ctx context.Context, list *TaskList) error
	// SoftDelete marks the list and its tasks deleted in one transaction.
	SoftDelete(ctx context.Context, id int) error
	// CompleteAll marks every task in the list done and reports the count.
	CompleteAll(ctx context.Context, listID int) (int64, error)
}
