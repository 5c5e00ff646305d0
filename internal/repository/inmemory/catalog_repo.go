package inmemory

import (
	"context"

	"projectTracker/internal/models/catalog"
	repo "projectTracker/internal/repository"

	"github.com/google/uuid"
)

// Seed наполняет справочники. Повторный вызов с той же меткой
// записи не дублирует.
func (s *Storage) Seed(ctx context.Context, priorityLabels, conditionLabels []string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, label := range priorityLabels {
		if s.findPriority(label) != nil {
			continue
		}
		p := catalog.Priority{ID: uuid.New(), Label: label}
		s.priorities[p.ID] = p
		s.priorityIDs = append(s.priorityIDs, p.ID)
	}

	for _, label := range conditionLabels {
		if s.findCondition(label) != nil {
			continue
		}
		c := catalog.Condition{ID: uuid.New(), Label: label}
		s.conditions[c.ID] = c
		s.conditionIDs = append(s.conditionIDs, c.ID)
	}

	return nil
}

func (s *Storage) findPriority(label string) *catalog.Priority {
	for _, id := range s.priorityIDs {
		p := s.priorities[id]
		if p.Label == label {
			return &p
		}
	}
	return nil
}

func (s *Storage) findCondition(label string) *catalog.Condition {
	for _, id := range s.conditionIDs {
		c := s.conditions[id]
		if c.Label == label {
			return &c
		}
	}
	return nil
}

func (s *Storage) GetPriority(ctx context.Context, id uuid.UUID) (*catalog.Priority, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	p, ok := s.priorities[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &p, nil
}

func (s *Storage) GetCondition(ctx context.Context, id uuid.UUID) (*catalog.Condition, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	c, ok := s.conditions[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &c, nil
}

func (s *Storage) GetConditionByLabel(ctx context.Context, label string) (*catalog.Condition, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if c := s.findCondition(label); c != nil {
		return c, nil
	}
	return nil, repo.ErrNotFound
}

func (s *Storage) GetPriorityByLabel(ctx context.Context, label string) (*catalog.Priority, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if p := s.findPriority(label); p != nil {
		return p, nil
	}
	return nil, repo.ErrNotFound
}

func (s *Storage) GetAllPriorities(ctx context.Context) ([]*catalog.Priority, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*catalog.Priority, 0, len(s.priorityIDs))
	for _, id := range s.priorityIDs {
		p := s.priorities[id]
		res = append(res, &p)
	}
	return res, nil
}

func (s *Storage) GetAllConditions(ctx context.Context) ([]*catalog.Condition, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*catalog.Condition, 0, len(s.conditionIDs))
	for _, id := range s.conditionIDs {
		c := s.conditions[id]
		res = append(res, &c)
	}
	return res, nil
}
