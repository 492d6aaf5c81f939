package dto

type TaskItem struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Type        *string `json:"type,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,max=64"`
	Type        *string `json:"type" binding:"omitempty,max=64"`
	Priority    *string `json:"priority" binding:"omitempty,max=64"`
}

type UpdateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,max=64"`
}
