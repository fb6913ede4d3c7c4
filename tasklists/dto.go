package tasklists

// CreateRequest is the payload for creating a task list.
type CreateRequest struct {
	Title       string  `json:"title" example:"groceries"`
	Description *string `json:"description,omitempty" example:"weekly shopping"`
}

// UpdateRequest is the patch payload for a task list. Nil fields are left
// unchanged.
type UpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Detail is a task list together with its tasks.
type Detail struct {
	TaskList *TaskList  `json:"tasks_list"`
	Tasks    []TaskItem `json:"tasks"`
}

// CompleteAllResponse reports how many tasks a complete-all swept.
type CompleteAllResponse struct {
	Completed int64 `json:"completed" example:"3"`
}
