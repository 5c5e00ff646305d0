package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"projectTracker/internal/logger"
	"projectTracker/internal/models/task"
	repo "projectTracker/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

func (s *Storage) CreateTask(ctx context.Context, taskToCreate *task.Task) error {
	start := time.Now()

	query := `INSERT INTO tasks
				(id, title, description, owner_id, project_id, priority_id, condition_id, completed, completed_at, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := s.pool.Exec(ctx, query,
		taskToCreate.ID,
		taskToCreate.Title,
		taskToCreate.Description,
		taskToCreate.OwnerID,
		taskToCreate.ProjectID,
		taskToCreate.PriorityID,
		taskToCreate.ConditionID,
		taskToCreate.Completed,
		taskToCreate.CompletedAt,
		taskToCreate.CreatedAt,
	)

	if err != nil {
		if isIntegrityViolation(err) {
			return repo.ErrIntegrity
		}
		logger.Error("Repository: Не удалось добавить задачу", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("добавление задачи: %w", err)
	}

	if time.Since(start) > time.Millisecond*50 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Storage) GetTask(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	start := time.Now()

	query := `SELECT
				id,
				title,
				description,
				owner_id,
				project_id,
				priority_id,
				condition_id,
				completed,
				completed_at,
				created_at
				FROM tasks
				WHERE id = $1`

	t := &task.Task{}
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.OwnerID,
		&t.ProjectID,
		&t.PriorityID,
		&t.ConditionID,
		&t.Completed,
		&t.CompletedAt,
		&t.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		logger.Error("Repository: Не удалось получить задачу", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение задачи: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}

	return t, nil
}

// UpdateTask перезаписывает изменяемые поля, created_at не трогает.
// Completed и completed_at пишутся вместе, консистентность пары дополнительно
// держит CHECK-ограничение в схеме.
func (s *Storage) UpdateTask(ctx context.Context, taskToUpdate *task.Task) error {
	start := time.Now()

	query := `UPDATE tasks
			SET title = $1,
				description = $2,
				project_id = $3,
				priority_id = $4,
				condition_id = $5,
				completed = $6,
				completed_at = $7
			WHERE id = $8`

	tag, err := s.pool.Exec(ctx, query,
		taskToUpdate.Title,
		taskToUpdate.Description,
		taskToUpdate.ProjectID,
		taskToUpdate.PriorityID,
		taskToUpdate.ConditionID,
		taskToUpdate.Completed,
		taskToUpdate.CompletedAt,
		taskToUpdate.ID,
	)

	if err != nil {
		if isIntegrityViolation(err) {
			return repo.ErrIntegrity
		}
		logger.Error("Repository: Не удалось обновить задачу", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("обновление задачи: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Storage) DeleteTask(ctx context.Context, id uuid.UUID) error {
	start := time.Now()

	query := `DELETE FROM tasks
				WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("Repository: Не удалось удалить задачу", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("удаление задачи: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Storage) GetTasksByProject(ctx context.Context, projectID uuid.UUID) ([]*task.Task, error) {
	return s.getTasksFiltered(ctx, `project_id`, projectID)
}

func (s *Storage) GetTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]*task.Task, error) {
	return s.getTasksFiltered(ctx, `owner_id`, ownerID)
}

func (s *Storage) getTasksFiltered(ctx context.Context, column string, value uuid.UUID) ([]*task.Task, error) {
	start := time.Now()

	query := `SELECT
				id,
				title,
				description,
				owner_id,
				project_id,
				priority_id,
				condition_id,
				completed,
				completed_at,
				created_at
				FROM tasks
				WHERE ` + column + ` = $1
				ORDER BY seq`

	rows, err := s.pool.Query(ctx, query, value)
	if err != nil {
		logger.Error("Repository: Не удалось получить задачи", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение задач: %w", err)
	}
	defer rows.Close()

	tasks := []*task.Task{}
	for rows.Next() {
		t := &task.Task{}

		err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.OwnerID,
			&t.ProjectID,
			&t.PriorityID,
			&t.ConditionID,
			&t.Completed,
			&t.CompletedAt,
			&t.CreatedAt,
		)
		if err != nil {
			logger.Warn("Repository: Ошибка сканирования задачи", zap.Error(err))
			continue
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Repository: Ошибка итерации по строкам", err)
		return nil, fmt.Errorf("итерация по строкам: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}

	return tasks, nil
}
