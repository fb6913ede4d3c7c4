// Package tasks manages individual tasks. Every task belongs to exactly one
// task list, and mutations are authorized against the owning list's creator:
// the list owner is the single ownership authority for the tasks inside it.
package tasks

import "time"

// Task represents a task record. ListOwnerID carries the owning list's
// creator, loaded alongside the task for authorization, and is never
// serialized.
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Done        bool       `json:"done"`
	ListID      int        `json:"list_id"`
	CreatedBy   int        `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
	ListOwnerID int        `json:"-"`
}
