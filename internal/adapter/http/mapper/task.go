package mapper

import (
	"time"

	"taskapp/internal/adapter/http/dto"
	"taskapp/internal/core/domain"
)

// ToTaskItems maps a list response and backfills absent type/priority.
// The backfill is display-only; stored rows keep their NULLs.
func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(domain.WithDisplayDefaults(task)))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Status:    task.Status,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.Type != nil {
		value := *task.Type
		item.Type = &value
	}

	if task.Priority != nil {
		value := *task.Priority
		item.Priority = &value
	}

	return item
}
