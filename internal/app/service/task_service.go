package service

import (
	"context"
	"time"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository, now: time.Now}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.ListTasks(ctx)
}

func (s *TaskService) GetTaskByID(ctx context.Context, id uint64) (*domain.Task, error) {
	return s.taskRepository.FindTaskByID(ctx, id)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	now := s.now()

	task := domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.DefaultStatus,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if input.Status != nil {
		task.Status = *input.Status
	}

	taskType := domain.DefaultType
	if input.Type != nil {
		taskType = *input.Type
	}
	task.Type = &taskType

	priority := domain.DefaultPriority
	if input.Priority != nil {
		priority = *input.Priority
	}
	task.Priority = &priority

	return s.taskRepository.CreateTask(ctx, task)
}

// UpdateTask overwrites title, description and status and refreshes
// updated_at. Type, priority and created_at are never touched by an update.
func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.FindTaskByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if task == nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	task.Title = input.Title
	task.Description = input.Description
	if input.Status != nil {
		task.Status = *input.Status
	}
	task.UpdatedAt = s.now()

	if err := s.taskRepository.UpdateTask(ctx, *task); err != nil {
		return domain.Task{}, err
	}

	return *task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	return s.taskRepository.DeleteTaskByID(ctx, id)
}
