package inmemory

import (
	"context"

	"projectTracker/internal/models/task"
	repo "projectTracker/internal/repository"

	"github.com/google/uuid"
)

// checkRefs повторяет поведение внешних ключей PostgreSQL:
// запись с висячей ссылкой в хранилище не попадает.
func (s *Storage) checkRefs(t *task.Task) error {
	if _, ok := s.projects[t.ProjectID]; !ok {
		return repo.ErrIntegrity
	}
	if _, ok := s.priorities[t.PriorityID]; !ok {
		return repo.ErrIntegrity
	}
	if _, ok := s.conditions[t.ConditionID]; !ok {
		return repo.ErrIntegrity
	}
	return nil
}

func (s *Storage) CreateTask(ctx context.Context, taskToCreate *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.tasks[taskToCreate.ID]; ok {
		return repo.ErrIntegrity
	}
	if err := s.checkRefs(taskToCreate); err != nil {
		return err
	}

	s.tasks[taskToCreate.ID] = *taskToCreate
	s.taskIDs = append(s.taskIDs, taskToCreate.ID)
	return nil
}

func (s *Storage) GetTask(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	taskToGet, ok := s.tasks[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &taskToGet, nil
}

func (s *Storage) UpdateTask(ctx context.Context, taskToUpdate *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.tasks[taskToUpdate.ID]; !ok {
		return repo.ErrNotFound
	}
	if err := s.checkRefs(taskToUpdate); err != nil {
		return err
	}

	s.tasks[taskToUpdate.ID] = *taskToUpdate
	return nil
}

func (s *Storage) DeleteTask(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return repo.ErrNotFound
	}

	delete(s.tasks, id)
	for ind, val := range s.taskIDs {
		if val == id {
			s.taskIDs = append(s.taskIDs[:ind], s.taskIDs[ind+1:]...)
			break
		}
	}
	return nil
}

func (s *Storage) GetTasksByProject(ctx context.Context, projectID uuid.UUID) ([]*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*task.Task{}
	for _, id := range s.taskIDs {
		taskToGet := s.tasks[id]
		if taskToGet.ProjectID != projectID {
			continue
		}
		res = append(res, &taskToGet)
	}
	return res, nil
}

func (s *Storage) GetTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*task.Task{}
	for _, id := range s.taskIDs {
		taskToGet := s.tasks[id]
		if taskToGet.OwnerID != ownerID {
			continue
		}
		res = append(res, &taskToGet)
	}
	return res, nil
}
