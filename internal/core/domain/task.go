package domain

import "time"

const (
	DefaultStatus   = "pending"
	DefaultType     = "Feature"
	DefaultPriority = "Medium"
)

type Task struct {
	ID          uint64
	Title       string
	Description *string
	Status      string
	Type        *string
	Priority    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      *string
	Type        *string
	Priority    *string
}

type UpdateTaskInput struct {
	Title       string
	Description *string
	Status      *string
}

// WithDisplayDefaults backfills absent type/priority for response payloads.
// Stored rows are never rewritten by a read.
func WithDisplayDefaults(task Task) Task {
	if task.Type == nil {
		value := DefaultType
		task.Type = &value
	}
	if task.Priority == nil {
		value := DefaultPriority
		task.Priority = &value
	}
	return task
}
