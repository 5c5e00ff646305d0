package service

import (
	"context"
	"fmt"

	"projectTracker/internal/logger"
	"projectTracker/internal/models/catalog"
)

type CatalogService struct {
	catalogs CatalogRepository
}

func NewCatalogService(catalogs CatalogRepository) CatalogService {
	return CatalogService{
		catalogs: catalogs,
	}
}

// Seed заполняет справочники стартовым набором меток.
// Справочники append-only: операций обновления и удаления нет.
func (s *CatalogService) Seed(ctx context.Context) error {
	priorities := []string{catalog.PriorityLow, catalog.PriorityMedium, catalog.PriorityHigh}
	conditions := []string{catalog.ConditionPending, catalog.ConditionInProgress, catalog.ConditionCompleted}

	if err := s.catalogs.Seed(ctx, priorities, conditions); err != nil {
		return fmt.Errorf("сид справочников: %w", err)
	}

	logger.Info("Service: Справочники готовы")
	return nil
}

func (s *CatalogService) GetAllPriorities(ctx context.Context) ([]*catalog.Priority, error) {
	priorities, err := s.catalogs.GetAllPriorities(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение приоритетов: %w", err)
	}
	return priorities, nil
}

func (s *CatalogService) GetAllConditions(ctx context.Context) ([]*catalog.Condition, error) {
	conditions, err := s.catalogs.GetAllConditions(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение состояний: %w", err)
	}
	return conditions, nil
}
