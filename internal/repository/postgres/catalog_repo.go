package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"projectTracker/internal/logger"
	"projectTracker/internal/models/catalog"
	repo "projectTracker/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Seed наполняет справочники, существующие метки не трогает.
func (s *Storage) Seed(ctx context.Context, priorityLabels, conditionLabels []string) error {
	for _, label := range priorityLabels {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO priorities (id, label) VALUES ($1, $2) ON CONFLICT (label) DO NOTHING`,
			uuid.New(), label)
		if err != nil {
			logger.Error("Repository: Ошибка сида приоритетов", err)
			return fmt.Errorf("сид приоритетов: %w", err)
		}
	}

	for _, label := range conditionLabels {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO conditions (id, label) VALUES ($1, $2) ON CONFLICT (label) DO NOTHING`,
			uuid.New(), label)
		if err != nil {
			logger.Error("Repository: Ошибка сида состояний", err)
			return fmt.Errorf("сид состояний: %w", err)
		}
	}

	logger.Info("Repository: Справочники заполнены")
	return nil
}

func (s *Storage) GetPriority(ctx context.Context, id uuid.UUID) (*catalog.Priority, error) {
	p := &catalog.Priority{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, label FROM priorities WHERE id = $1`, id).Scan(&p.ID, &p.Label)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, fmt.Errorf("получение приоритета: %w", err)
	}
	return p, nil
}

func (s *Storage) GetPriorityByLabel(ctx context.Context, label string) (*catalog.Priority, error) {
	p := &catalog.Priority{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, label FROM priorities WHERE label = $1`, label).Scan(&p.ID, &p.Label)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, fmt.Errorf("получение приоритета: %w", err)
	}
	return p, nil
}

func (s *Storage) GetCondition(ctx context.Context, id uuid.UUID) (*catalog.Condition, error) {
	c := &catalog.Condition{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, label FROM conditions WHERE id = $1`, id).Scan(&c.ID, &c.Label)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, fmt.Errorf("получение состояния: %w", err)
	}
	return c, nil
}

func (s *Storage) GetConditionByLabel(ctx context.Context, label string) (*catalog.Condition, error) {
	c := &catalog.Condition{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, label FROM conditions WHERE label = $1`, label).Scan(&c.ID, &c.Label)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, fmt.Errorf("получение состояния: %w", err)
	}
	return c, nil
}

func (s *Storage) GetAllPriorities(ctx context.Context) ([]*catalog.Priority, error) {
	start := time.Now()

	rows, err := s.pool.Query(ctx, `SELECT id, label FROM priorities ORDER BY label`)
	if err != nil {
		logger.Error("Repository: Не удалось получить приоритеты", err)
		return nil, fmt.Errorf("получение приоритетов: %w", err)
	}
	defer rows.Close()

	priorities := []*catalog.Priority{}
	for rows.Next() {
		p := &catalog.Priority{}
		if err := rows.Scan(&p.ID, &p.Label); err != nil {
			logger.Warn("Repository: Ошибка сканирования приоритета", zap.Error(err))
			continue
		}
		priorities = append(priorities, p)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Repository: Ошибка итерации по строкам", err)
		return nil, fmt.Errorf("итерация по строкам: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}

	return priorities, nil
}

func (s *Storage) GetAllConditions(ctx context.Context) ([]*catalog.Condition, error) {
	start := time.Now()

	rows, err := s.pool.Query(ctx, `SELECT id, label FROM conditions ORDER BY label`)
	if err != nil {
		logger.Error("Repository: Не удалось получить состояния", err)
		return nil, fmt.Errorf("получение состояний: %w", err)
	}
	defer rows.Close()

	conditions := []*catalog.Condition{}
	for rows.Next() {
		c := &catalog.Condition{}
		if err := rows.Scan(&c.ID, &c.Label); err != nil {
			logger.Warn("Repository: Ошибка сканирования состояния", zap.Error(err))
			continue
		}
		conditions = append(conditions, c)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Repository: Ошибка итерации по строкам", err)
		return nil, fmt.Errorf("итерация по строкам: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}

	return conditions, nil
}
