package service

import (
	"context"

	"projectTracker/internal/models/catalog"
	"projectTracker/internal/models/project"
	"projectTracker/internal/models/task"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	CreateProject(context.Context, *project.Project) error
	GetProject(context.Context, uuid.UUID) (*project.Project, error)
	GetAllProjects(context.Context) ([]*project.Project, error)
	DeleteProject(context.Context, uuid.UUID) error
}

type TaskRepository interface {
	HealthCheck(context.Context) error
	CreateTask(context.Context, *task.Task) error
	GetTask(context.Context, uuid.UUID) (*task.Task, error)
	UpdateTask(context.Context, *task.Task) error
	DeleteTask(context.Context, uuid.UUID) error
	GetTasksByProject(context.Context, uuid.UUID) ([]*task.Task, error)
	GetTasksByOwner(context.Context, uuid.UUID) ([]*task.Task, error)
}

type CatalogRepository interface {
	Seed(ctx context.Context, priorityLabels, conditionLabels []string) error
	GetPriority(context.Context, uuid.UUID) (*catalog.Priority, error)
	GetPriorityByLabel(context.Context, string) (*catalog.Priority, error)
	GetCondition(context.Context, uuid.UUID) (*catalog.Condition, error)
	GetConditionByLabel(context.Context, string) (*catalog.Condition, error)
	GetAllPriorities(context.Context) ([]*catalog.Priority, error)
	GetAllConditions(context.Context) ([]*catalog.Condition, error)
}
