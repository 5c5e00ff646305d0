package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"projectTracker/internal/config"
	"projectTracker/internal/handlers"
	"projectTracker/internal/logger"
	"projectTracker/internal/middleware"
	"projectTracker/internal/repository/inmemory"
	"projectTracker/internal/repository/postgres"
	"projectTracker/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// storage - общий контракт бэкендов хранилища.
type storage interface {
	service.ProjectRepository
	service.TaskRepository
	service.CatalogRepository
	Close()
}

type App struct {
	config    *config.Config
	server    *http.Server
	router    *chi.Mux
	shutdowns []func() // функции для graceful shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	st, err := a.initStorage(ctx)
	if err != nil {
		return err
	}
	a.shutdowns = append(a.shutdowns, st.Close)

	projectService := service.NewProjectService(st)
	taskService := service.NewTaskService(st, st, st)
	catalogService := service.NewCatalogService(st)

	if err := catalogService.Seed(ctx); err != nil {
		return fmt.Errorf("инициализация справочников: %w", err)
	}

	projectHandler := handlers.NewProjectHandler(&projectService)
	taskHandler := handlers.NewTaskHandler(&taskService)
	catalogHandler := handlers.NewCatalogHandler(&catalogService)

	a.router = a.buildRouter(&projectHandler, &taskHandler, &catalogHandler)
	a.server = &http.Server{
		Addr:    a.config.GetServerAddr(),
		Handler: a.router,
	}

	return nil
}

func (a *App) initStorage(ctx context.Context) (storage, error) {
	switch a.config.Repository.Type {
	case "postgres":
		if err := postgres.Migrate(a.config.Database.URL); err != nil {
			return nil, fmt.Errorf("миграции: %w", err)
		}
		st, err := postgres.New(ctx, a.config.Database.URL,
			a.config.Database.MaxConnections,
			a.config.Database.MinConnections,
			a.config.Database.IdleTimeout)
		if err != nil {
			return nil, fmt.Errorf("подключение к PostgreSQL: %w", err)
		}
		return st, nil
	case "inmemory":
		return inmemory.New(), nil
	default:
		return nil, fmt.Errorf("неизвестный тип репозитория: %s", a.config.Repository.Type)
	}
}

func (a *App) buildRouter(projectHandler *handlers.ProjectHandler, taskHandler *handlers.TaskHandler, catalogHandler *handlers.CatalogHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.RateLimit(a.config.Server.RateLimitRPM))
	r.Use(middleware.Actor)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID", "X-User-ID"},
	}))

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", projectHandler.GetAllProjects) // GET /projects
		r.Post("/", projectHandler.PostProject)   // POST /projects

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", projectHandler.GetProjectByID)       // GET /projects/{id}
			r.Delete("/", projectHandler.DeleteProjectByID) // DELETE /projects/{id}
			r.Get("/tasks", taskHandler.GetProjectTasks)    // GET /projects/{id}/tasks
		})
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.GetMyTasks) // GET /tasks
		r.Post("/", taskHandler.PostTask)  // POST /tasks

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTaskByID)       // GET /tasks/{id}
			r.Put("/", taskHandler.UpdateTaskByID)    // PUT /tasks/{id}
			r.Delete("/", taskHandler.DeleteTaskByID) // DELETE /tasks/{id}

			r.Post("/complete", taskHandler.CompleteTask) // POST /tasks/{id}/complete
		})
	})

	r.Get("/priorities", catalogHandler.GetPriorities)
	r.Get("/conditions", catalogHandler.GetConditions)

	r.Get("/health", taskHandler.HealthCheck)

	return r
}

// Run блокируется до отмены контекста, затем гасит сервер
// и выполняет shutdown-функции в обратном порядке.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		logger.Info("Server started: " + a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("сервер: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки сервера", err)
	}

	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}

	return nil
}
