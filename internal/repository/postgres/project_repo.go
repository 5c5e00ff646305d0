package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"projectTracker/internal/logger"
	"projectTracker/internal/models/project"
	repo "projectTracker/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

func (s *Storage) CreateProject(ctx context.Context, projectToCreate *project.Project) error {
	start := time.Now()

	query := `INSERT INTO projects (id, title, description, created_at)
				VALUES ($1, $2, $3, $4)`

	_, err := s.pool.Exec(ctx, query,
		projectToCreate.ID,
		projectToCreate.Title,
		projectToCreate.Description,
		projectToCreate.CreatedAt,
	)

	if err != nil {
		if isIntegrityViolation(err) {
			return repo.ErrIntegrity
		}
		logger.Error("Repository: Не удалось добавить проект", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("добавление проекта: %w", err)
	}

	if time.Since(start) > time.Millisecond*50 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Storage) GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	start := time.Now()

	query := `SELECT id, title, description, created_at
				FROM projects
				WHERE id = $1`

	p := &project.Project{}
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		logger.Error("Repository: Не удалось получить проект", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение проекта: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}

	return p, nil
}

// порядок вставки через seq
func (s *Storage) GetAllProjects(ctx context.Context) ([]*project.Project, error) {
	start := time.Now()

	query := `SELECT id, title, description, created_at
				FROM projects
				ORDER BY seq`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		logger.Error("Repository: Не удалось получить проекты", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение проектов: %w", err)
	}
	defer rows.Close()

	projects := []*project.Project{}
	for rows.Next() {
		p := &project.Project{}
		err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt)
		if err != nil {
			logger.Warn("Repository: Ошибка сканирования проекта", zap.Error(err))
			continue
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Repository: Ошибка итерации по строкам", err)
		return nil, fmt.Errorf("итерация по строкам: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}

	return projects, nil
}

// DeleteProject удаляет проект, задачи уходят каскадом по внешнему ключу.
func (s *Storage) DeleteProject(ctx context.Context, id uuid.UUID) error {
	start := time.Now()

	query := `DELETE FROM projects
				WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("Repository: Не удалось удалить проект", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("удаление проекта: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}
	return nil
}
