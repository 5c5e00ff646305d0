package handlers

import (
	"context"

	"projectTracker/internal/models/catalog"
	"projectTracker/internal/models/project"
	"projectTracker/internal/models/task"

	"github.com/google/uuid"
)

type ProjectService interface {
	CreateProject(ctx context.Context, actor uuid.UUID, title, description string) (*project.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error)
	GetAllProjects(ctx context.Context) ([]*project.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type TaskService interface {
	HealthCheck(ctx context.Context) error
	CreateTask(ctx context.Context, actor uuid.UUID, title, description string, projectID, priorityID, conditionID uuid.UUID) (*task.Task, error)
	GetTaskByID(ctx context.Context, id uuid.UUID) (*task.Task, error)
	UpdateTask(ctx context.Context, actor, id uuid.UUID, options ...task.TaskOption) (*task.Task, error)
	CompleteTask(ctx context.Context, actor, id uuid.UUID) (*task.Task, error)
	DeleteTask(ctx context.Context, actor, id uuid.UUID) error
	GetTasksByProject(ctx context.Context, projectID uuid.UUID) ([]*task.Task, error)
	GetTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]*task.Task, error)
}

type CatalogService interface {
	GetAllPriorities(ctx context.Context) ([]*catalog.Priority, error)
	GetAllConditions(ctx context.Context) ([]*catalog.Condition, error)
}
