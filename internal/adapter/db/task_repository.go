package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/ports"
)

const (
	listTasksQuery = `
SELECT id, title, description, status, task_type, priority, created_at, updated_at
FROM tasks
ORDER BY id;
`

	findTaskByIDQuery = `
SELECT id, title, description, status, task_type, priority, created_at, updated_at
FROM tasks
WHERE id = ?;
`

	insertTaskQuery = `
INSERT INTO tasks (title, description, status, task_type, priority, created_at, updated_at)
VALUES (:title, :description, :status, :task_type, :priority, :created_at, :updated_at);
`

	updateTaskQuery = `
UPDATE tasks
SET title = :title,
    description = :description,
    status = :status,
    task_type = :task_type,
    priority = :priority,
    created_at = :created_at,
    updated_at = :updated_at
WHERE id = :id;
`

	deleteTaskByIDQuery = `DELETE FROM tasks WHERE id = ?;`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	Type        sql.NullString `db:"task_type"`
	Priority    sql.NullString `db:"priority"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) FindTaskByID(ctx context.Context, id uint64) (*domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, findTaskByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	task := mapTaskRowToDomainTask(row)
	return &task, nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	result, err := r.db.NamedExecContext(ctx, insertTaskQuery, mapDomainTaskToRow(task))
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	task.ID = uint64(id)
	return task, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	_, err := r.db.NamedExecContext(ctx, updateTaskQuery, mapDomainTaskToRow(task))
	return err
}

// DeleteTaskByID is a no-op when the id does not exist.
func (r *TaskRepository) DeleteTaskByID(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, deleteTaskByIDQuery, id)
	return err
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.Type.Valid {
		value := row.Type.String
		task.Type = &value
	}

	if row.Priority.Valid {
		value := row.Priority.String
		task.Priority = &value
	}

	return task
}

func mapDomainTaskToRow(task domain.Task) taskRow {
	row := taskRow{
		ID:        task.ID,
		Title:     task.Title,
		Status:    task.Status,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}

	if task.Description != nil {
		row.Description = sql.NullString{String: *task.Description, Valid: true}
	}

	if task.Type != nil {
		row.Type = sql.NullString{String: *task.Type, Valid: true}
	}

	if task.Priority != nil {
		row.Priority = sql.NullString{String: *task.Priority, Valid: true}
	}

	return row
}
