package inmemory

import (
	"context"
	"sync"

	"projectTracker/internal/logger"
	"projectTracker/internal/models/catalog"
	"projectTracker/internal/models/project"
	"projectTracker/internal/models/task"

	"github.com/google/uuid"
)

// Storage - хранилище в памяти. Все сущности живут под одним мьютексом,
// чтобы каскадное удаление проекта вместе с задачами было атомарным.
// Списки id хранят порядок вставки.
type Storage struct {
	mtx          sync.RWMutex
	projects     map[uuid.UUID]project.Project
	projectIDs   []uuid.UUID
	tasks        map[uuid.UUID]task.Task
	taskIDs      []uuid.UUID
	priorities   map[uuid.UUID]catalog.Priority
	priorityIDs  []uuid.UUID
	conditions   map[uuid.UUID]catalog.Condition
	conditionIDs []uuid.UUID
}

func New() *Storage {
	return &Storage{
		projects:   make(map[uuid.UUID]project.Project),
		tasks:      make(map[uuid.UUID]task.Task),
		priorities: make(map[uuid.UUID]catalog.Priority),
		conditions: make(map[uuid.UUID]catalog.Condition),
	}
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	logger.Info("Repository: Соединение стабильно")
	return nil
}

func (s *Storage) Close() {}
