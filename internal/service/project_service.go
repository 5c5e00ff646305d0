package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"projectTracker/internal/logger"
	"projectTracker/internal/models/project"
	repo "projectTracker/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// здесь происходит проверка ошибок бизнес-логики

type ProjectService struct {
	projects ProjectRepository
}

func NewProjectService(projects ProjectRepository) ProjectService {
	return ProjectService{
		projects: projects,
	}
}

// CreateProject создаёт проект. Владелец в сущности не хранится,
// но операция требует аутентифицированного актора.
func (s *ProjectService) CreateProject(ctx context.Context, actor uuid.UUID, title, description string) (*project.Project, error) {
	if actor == uuid.Nil {
		return nil, NewForbidden("project", "new")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, NewValidationError("title", "пустое значение")
	}
	if len([]rune(title)) > project.MaxTitleLen {
		return nil, NewValidationError("title", fmt.Sprintf("длина больше %d символов", project.MaxTitleLen))
	}

	p := &project.Project{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}

	if err := s.projects.CreateProject(ctx, p); err != nil {
		if errors.Is(err, repo.ErrIntegrity) {
			return nil, NewIntegrityError(err)
		}
		return nil, fmt.Errorf("создание проекта: %w", err)
	}

	logger.Info("Service: Проект создан", zap.String("project_id", p.ID.String()))
	return p, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	p, err := s.projects.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Info("Service: Проект не найден", zap.String("target_id", id.String()))
			return nil, NewNotFound("project", id.String())
		}
		return nil, fmt.Errorf("получение проекта: %w", err)
	}
	return p, nil
}

func (s *ProjectService) GetAllProjects(ctx context.Context) ([]*project.Project, error) {
	projects, err := s.projects.GetAllProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение проектов: %w", err)
	}
	return projects, nil
}

// DeleteProject удаляет проект и каскадом все его задачи.
func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := s.projects.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Info("Service: Проект не найден", zap.String("target_id", id.String()))
			return NewNotFound("project", id.String())
		}
		return fmt.Errorf("удаление проекта: %w", err)
	}

	logger.Info("Service: Проект удалён вместе с задачами", zap.String("project_id", id.String()))
	return nil
}
