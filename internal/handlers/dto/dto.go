package dto

import (
	"projectTracker/internal/models/task"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CreateTaskRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ProjectID   uuid.UUID `json:"project_id"`
	PriorityID  uuid.UUID `json:"priority_id"`
	// пустое значение - начальное состояние Pending
	ConditionID uuid.UUID `json:"condition_id,omitempty"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
	PriorityID  *uuid.UUID `json:"priority_id,omitempty"`
	ConditionID *uuid.UUID `json:"condition_id,omitempty"`
}

// Options собирает опции частичного обновления: nil-поля запроса
// опциями не становятся.
func (r *UpdateTaskRequest) Options() []task.TaskOption {
	options := []task.TaskOption{}
	if r.Title != nil {
		options = append(options, task.WithTitle(*r.Title))
	}
	if r.Description != nil {
		options = append(options, task.WithDescription(*r.Description))
	}
	if r.ProjectID != nil {
		options = append(options, task.WithProject(*r.ProjectID))
	}
	if r.PriorityID != nil {
		options = append(options, task.WithPriority(*r.PriorityID))
	}
	if r.ConditionID != nil {
		options = append(options, task.WithCondition(*r.ConditionID))
	}
	return options
}
