// Package tasklists manages task lists: the containers tasks live in. A task
// list records the identity that created it, and that creator is the
// authoritative owner for every task inside the list.
package tasklists

import "time"

// TaskList represents a task list record.
type TaskList struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	CreatedBy   int        `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}

// OwnerID returns the creating identity, satisfying auth.Owned.
func (l *TaskList) OwnerID() int {
	return l.CreatedBy
}

// TaskItem is the view of a task embedded in a task list detail response.
type TaskItem struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Done        bool      `json:"done"`
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
