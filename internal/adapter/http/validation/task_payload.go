package validation

import (
	"errors"
	"strings"

	"taskapp/internal/adapter/http/dto"
	"taskapp/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	if req.Status != nil && strings.TrimSpace(*req.Status) == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Type != nil && strings.TrimSpace(*req.Type) == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Priority != nil && strings.TrimSpace(*req.Priority) == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		Status:      req.Status,
		Type:        req.Type,
		Priority:    req.Priority,
	}, nil
}

// BuildUpdateTaskInput keeps the stored status when the patch omits it;
// status may never be null in storage. An omitted description clears the
// stored value, matching the full-overwrite update contract.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest) (domain.UpdateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	if req.Status != nil && strings.TrimSpace(*req.Status) == "" {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Title:       title,
		Description: req.Description,
		Status:      req.Status,
	}, nil
}
