package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"projectTracker/internal/logger"
	"projectTracker/internal/models/catalog"
	"projectTracker/internal/models/task"
	repo "projectTracker/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskService struct {
	tasks    TaskRepository
	projects ProjectRepository
	catalogs CatalogRepository
}

func NewTaskService(tasks TaskRepository, projects ProjectRepository, catalogs CatalogRepository) TaskService {
	return TaskService{
		tasks:    tasks,
		projects: projects,
		catalogs: catalogs,
	}
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	if err := s.tasks.HealthCheck(ctx); err != nil {
		return fmt.Errorf("проверка здоровья сервиса: %w", err)
	}
	return nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", NewValidationError("title", "пустое значение")
	}
	if len([]rune(title)) > task.MaxTitleLen {
		return "", NewValidationError("title", fmt.Sprintf("длина больше %d символов", task.MaxTitleLen))
	}
	return title, nil
}

// CreateTask проверяет заголовок и существование всех ссылок до записи.
// Пустой conditionID означает начальное состояние Pending.
func (s *TaskService) CreateTask(ctx context.Context, actor uuid.UUID, title, description string, projectID, priorityID, conditionID uuid.UUID) (*task.Task, error) {
	if actor == uuid.Nil {
		return nil, NewForbidden("task", "new")
	}

	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	if _, err := s.projects.GetProject(ctx, projectID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFound("project", projectID.String())
		}
		return nil, fmt.Errorf("проверка проекта: %w", err)
	}

	if _, err := s.catalogs.GetPriority(ctx, priorityID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFound("priority", priorityID.String())
		}
		return nil, fmt.Errorf("проверка приоритета: %w", err)
	}

	if conditionID == uuid.Nil {
		pending, err := s.catalogs.GetConditionByLabel(ctx, catalog.ConditionPending)
		if err != nil {
			return nil, fmt.Errorf("поиск начального состояния: %w", err)
		}
		conditionID = pending.ID
	} else {
		if _, err := s.catalogs.GetCondition(ctx, conditionID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, NewNotFound("condition", conditionID.String())
			}
			return nil, fmt.Errorf("проверка состояния: %w", err)
		}
	}

	t := &task.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		OwnerID:     actor,
		ProjectID:   projectID,
		PriorityID:  priorityID,
		ConditionID: conditionID,
		Completed:   false,
		CompletedAt: nil,
		CreatedAt:   time.Now(),
	}

	if err := s.tasks.CreateTask(ctx, t); err != nil {
		if errors.Is(err, repo.ErrIntegrity) {
			// ссылка успела исчезнуть между проверкой и записью
			return nil, NewIntegrityError(err)
		}
		return nil, fmt.Errorf("создание задачи: %w", err)
	}

	logger.Info("Service: Задача создана",
		zap.String("task_id", t.ID.String()),
		zap.String("project_id", projectID.String()))
	return t, nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	t, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.String("target_id", id.String()))
			return nil, NewNotFound("task", id.String())
		}
		return nil, fmt.Errorf("получение задачи: %w", err)
	}
	return t, nil
}

// UpdateTask применяет только переданные опции. CreatedAt и пара
// Completed/CompletedAt опциями не затрагиваются.
func (s *TaskService) UpdateTask(ctx context.Context, actor, id uuid.UUID, options ...task.TaskOption) (*task.Task, error) {
	t, err := s.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	for _, opt := range options {
		if opt != nil {
			opt(t)
		}
	}

	t.Title, err = validateTitle(t.Title)
	if err != nil {
		return nil, err
	}

	if _, err := s.projects.GetProject(ctx, t.ProjectID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFound("project", t.ProjectID.String())
		}
		return nil, fmt.Errorf("проверка проекта: %w", err)
	}
	if _, err := s.catalogs.GetPriority(ctx, t.PriorityID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFound("priority", t.PriorityID.String())
		}
		return nil, fmt.Errorf("проверка приоритета: %w", err)
	}
	if _, err := s.catalogs.GetCondition(ctx, t.ConditionID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFound("condition", t.ConditionID.String())
		}
		return nil, fmt.Errorf("проверка состояния: %w", err)
	}

	if err := s.tasks.UpdateTask(ctx, t); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return nil, NewNotFound("task", id.String())
		case errors.Is(err, repo.ErrIntegrity):
			return nil, NewIntegrityError(err)
		}
		return nil, fmt.Errorf("обновление задачи: %w", err)
	}

	return t, nil
}

// CompleteTask переводит задачу в завершённое состояние: Completed,
// CompletedAt и состояние Completed выставляются вместе одной записью.
// Повторный вызов - no-op, возвращает текущее состояние.
func (s *TaskService) CompleteTask(ctx context.Context, actor, id uuid.UUID) (*task.Task, error) {
	t, err := s.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if t.Completed {
		logger.Info("Service: Задача уже завершена", zap.String("task_id", id.String()))
		return t, nil
	}

	completed, err := s.catalogs.GetConditionByLabel(ctx, catalog.ConditionCompleted)
	if err != nil {
		return nil, fmt.Errorf("поиск состояния завершения: %w", err)
	}

	now := time.Now()
	t.Completed = true
	t.CompletedAt = &now
	t.ConditionID = completed.ID

	if err := s.tasks.UpdateTask(ctx, t); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFound("task", id.String())
		}
		return nil, fmt.Errorf("завершение задачи: %w", err)
	}

	logger.Info("Service: Задача завершена", zap.String("task_id", id.String()))
	return t, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, actor, id uuid.UUID) error {
	// удаление доступно только владельцу
	if _, err := s.loadOwned(ctx, actor, id); err != nil {
		return err
	}

	if err := s.tasks.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewNotFound("task", id.String())
		}
		return fmt.Errorf("удаление задачи: %w", err)
	}

	logger.Info("Service: Задача удалена", zap.String("task_id", id.String()))
	return nil
}

func (s *TaskService) GetTasksByProject(ctx context.Context, projectID uuid.UUID) ([]*task.Task, error) {
	if _, err := s.projects.GetProject(ctx, projectID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFound("project", projectID.String())
		}
		return nil, fmt.Errorf("проверка проекта: %w", err)
	}

	tasks, err := s.tasks.GetTasksByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("получение задач проекта: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]*task.Task, error) {
	tasks, err := s.tasks.GetTasksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("получение задач пользователя: %w", err)
	}
	return tasks, nil
}

// loadOwned загружает задачу и проверяет, что актор - её владелец.
func (s *TaskService) loadOwned(ctx context.Context, actor, id uuid.UUID) (*task.Task, error) {
	t, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.String("target_id", id.String()))
			return nil, NewNotFound("task", id.String())
		}
		return nil, fmt.Errorf("получение задачи: %w", err)
	}

	if actor == uuid.Nil || t.OwnerID != actor {
		logger.Warn("Service: Попытка изменить чужую задачу",
			zap.String("task_id", id.String()),
			zap.String("actor", actor.String()))
		return nil, NewForbidden("task", id.String())
	}

	return t, nil
}
