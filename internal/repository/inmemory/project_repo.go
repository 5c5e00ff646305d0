package inmemory

import (
	"context"

	"projectTracker/internal/models/project"
	repo "projectTracker/internal/repository"

	"github.com/google/uuid"
)

func (s *Storage) CreateProject(ctx context.Context, projectToCreate *project.Project) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.projects[projectToCreate.ID]; ok {
		return repo.ErrIntegrity
	}

	s.projects[projectToCreate.ID] = *projectToCreate
	s.projectIDs = append(s.projectIDs, projectToCreate.ID)
	return nil
}

func (s *Storage) GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	projectToGet, ok := s.projects[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &projectToGet, nil
}

func (s *Storage) GetAllProjects(ctx context.Context) ([]*project.Project, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*project.Project, 0, len(s.projectIDs))
	for _, id := range s.projectIDs {
		projectToGet := s.projects[id]
		res = append(res, &projectToGet)
	}
	return res, nil
}

// DeleteProject удаляет проект и каскадно все его задачи под одним локом:
// ни одна задача не может остаться со ссылкой на отсутствующий проект.
func (s *Storage) DeleteProject(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.projects[id]; !ok {
		return repo.ErrNotFound
	}

	delete(s.projects, id)
	for ind, val := range s.projectIDs {
		if val == id {
			s.projectIDs = append(s.projectIDs[:ind], s.projectIDs[ind+1:]...)
			break
		}
	}

	remaining := s.taskIDs[:0]
	for _, taskID := range s.taskIDs {
		if s.tasks[taskID].ProjectID == id {
			delete(s.tasks, taskID)
			continue
		}
		remaining = append(remaining, taskID)
	}
	s.taskIDs = remaining

	return nil
}
