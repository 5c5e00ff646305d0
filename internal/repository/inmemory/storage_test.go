package inmemory_test

import (
	"context"
	"os"
	"testing"
	"time"

	"projectTracker/internal/logger"
	"projectTracker/internal/models/catalog"
	"projectTracker/internal/models/project"
	"projectTracker/internal/models/task"
	repo "projectTracker/internal/repository"
	"projectTracker/internal/repository/inmemory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init(true); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// seededStorage возвращает хранилище с заполненными справочниками
// и одним проектом.
func seededStorage(t *testing.T) (*inmemory.Storage, *project.Project, *catalog.Priority, *catalog.Condition) {
	t.Helper()
	ctx := context.Background()
	s := inmemory.New()

	err := s.Seed(ctx,
		[]string{catalog.PriorityLow, catalog.PriorityMedium, catalog.PriorityHigh},
		[]string{catalog.ConditionPending, catalog.ConditionInProgress, catalog.ConditionCompleted},
	)
	require.NoError(t, err)

	p := &project.Project{ID: uuid.New(), Title: "Sprint 1", CreatedAt: time.Now()}
	require.NoError(t, s.CreateProject(ctx, p))

	prio, err := s.GetPriorityByLabel(ctx, catalog.PriorityMedium)
	require.NoError(t, err)
	cond, err := s.GetConditionByLabel(ctx, catalog.ConditionPending)
	require.NoError(t, err)

	return s, p, prio, cond
}

func newTask(p *project.Project, prio *catalog.Priority, cond *catalog.Condition, title string) *task.Task {
	return &task.Task{
		ID:          uuid.New(),
		Title:       title,
		OwnerID:     uuid.New(),
		ProjectID:   p.ID,
		PriorityID:  prio.ID,
		ConditionID: cond.ID,
		CreatedAt:   time.Now(),
	}
}

func TestStorage_SeedIdempotent(t *testing.T) {
	ctx := context.Background()
	s, _, _, _ := seededStorage(t)

	// повторный Seed не плодит дубликаты
	err := s.Seed(ctx,
		[]string{catalog.PriorityLow, catalog.PriorityMedium, catalog.PriorityHigh},
		[]string{catalog.ConditionPending, catalog.ConditionInProgress, catalog.ConditionCompleted},
	)
	require.NoError(t, err)

	priorities, err := s.GetAllPriorities(ctx)
	require.NoError(t, err)
	assert.Len(t, priorities, 3)

	conditions, err := s.GetAllConditions(ctx)
	require.NoError(t, err)
	assert.Len(t, conditions, 3)
}

func TestStorage_TaskCRUD(t *testing.T) {
	ctx := context.Background()
	s, p, prio, cond := seededStorage(t)

	created := newTask(p, prio, cond, "Первая задача")
	require.NoError(t, s.CreateTask(ctx, created))

	got, err := s.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.OwnerID, got.OwnerID)

	got.Title = "Обновлено"
	require.NoError(t, s.UpdateTask(ctx, got))

	updated, err := s.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Обновлено", updated.Title)

	require.NoError(t, s.DeleteTask(ctx, created.ID))
	_, err = s.GetTask(ctx, created.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.ErrorIs(t, s.DeleteTask(ctx, created.ID), repo.ErrNotFound)
}

func TestStorage_TaskDanglingRefs(t *testing.T) {
	ctx := context.Background()
	s, p, prio, cond := seededStorage(t)

	t.Run("missing project", func(t *testing.T) {
		bad := newTask(p, prio, cond, "t")
		bad.ProjectID = uuid.New()
		assert.ErrorIs(t, s.CreateTask(ctx, bad), repo.ErrIntegrity)
	})

	t.Run("missing priority", func(t *testing.T) {
		bad := newTask(p, prio, cond, "t")
		bad.PriorityID = uuid.New()
		assert.ErrorIs(t, s.CreateTask(ctx, bad), repo.ErrIntegrity)
	})

	t.Run("missing condition on update", func(t *testing.T) {
		ok := newTask(p, prio, cond, "t")
		require.NoError(t, s.CreateTask(ctx, ok))
		ok.ConditionID = uuid.New()
		assert.ErrorIs(t, s.UpdateTask(ctx, ok), repo.ErrIntegrity)
	})
}

func TestStorage_DeleteProjectCascade(t *testing.T) {
	ctx := context.Background()
	s, p, prio, cond := seededStorage(t)

	other := &project.Project{ID: uuid.New(), Title: "Sprint 2", CreatedAt: time.Now()}
	require.NoError(t, s.CreateProject(ctx, other))

	doomed1 := newTask(p, prio, cond, "удалится")
	doomed2 := newTask(p, prio, cond, "тоже удалится")
	survivor := newTask(other, prio, cond, "останется")
	for _, tk := range []*task.Task{doomed1, survivor, doomed2} {
		require.NoError(t, s.CreateTask(ctx, tk))
	}

	require.NoError(t, s.DeleteProject(ctx, p.ID))

	_, err := s.GetProject(ctx, p.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	_, err = s.GetTask(ctx, doomed1.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	_, err = s.GetTask(ctx, doomed2.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	// задачи чужого проекта не затронуты
	left, err := s.GetTasksByProject(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, survivor.ID, left[0].ID)

	assert.ErrorIs(t, s.DeleteProject(ctx, p.ID), repo.ErrNotFound)
}

func TestStorage_ListOrder(t *testing.T) {
	ctx := context.Background()
	s, p, prio, cond := seededStorage(t)

	owner := uuid.New()
	titles := []string{"первая", "вторая", "третья"}
	for _, title := range titles {
		tk := newTask(p, prio, cond, title)
		tk.OwnerID = owner
		require.NoError(t, s.CreateTask(ctx, tk))
	}

	// порядок вставки сохраняется
	byProject, err := s.GetTasksByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, byProject, 3)
	for i, tk := range byProject {
		assert.Equal(t, titles[i], tk.Title)
	}

	byOwner, err := s.GetTasksByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, byOwner, 3)
	for i, tk := range byOwner {
		assert.Equal(t, titles[i], tk.Title)
	}
}

func TestStorage_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, p, prio, cond := seededStorage(t)

	tk := newTask(p, prio, cond, "оригинал")
	require.NoError(t, s.CreateTask(ctx, tk))

	got, err := s.GetTask(ctx, tk.ID)
	require.NoError(t, err)
	got.Title = "мутация снаружи"

	again, err := s.GetTask(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, "оригинал", again.Title)
}

func TestStorage_HealthCheck(t *testing.T) {
	s := inmemory.New()
	assert.NoError(t, s.HealthCheck(context.Background()))
}
