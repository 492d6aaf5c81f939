package ports

import (
	"context"

	"taskapp/internal/core/domain"
)

type TaskRepository interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	FindTaskByID(ctx context.Context, id uint64) (*domain.Task, error)
	CreateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) error
	DeleteTaskByID(ctx context.Context, id uint64) error
}

type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTaskByID(ctx context.Context, id uint64) (*domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
}
