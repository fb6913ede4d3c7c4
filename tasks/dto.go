package tasks

// CreateRequest is the payload for creating a task.
type CreateRequest struct {
	Title       string  `json:"title" example:"buy milk"`
	Description *string `json:"description,omitempty" example:"two liters"`
	ListID      int     `json:"list_id" example:"1"`
}

// UpdateRequest is the patch payload for a task. Nil fields are left
// unchanged; a non-nil ListID moves the task to another list the caller owns.
type UpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ListID      *int    `json:"list_id,omitempty"`
}
