// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	router "todo-service/internal/api"
	"todo-service/internal/api/handler"
	"todo-service/internal/config"
	"todo-service/internal/repository"
	"todo-service/internal/repository/memory"
	"todo-service/internal/service"
	"todo-service/internal/util"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger

	// Repositories
	UserRepository repository.UserRepository

	// Services
	UserService service.UserService
	TodoService service.TodoService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()

	// 2. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Initialize Repositories
	// State is process-lifetime only; a restart starts from an empty store.
	app.UserRepository = memory.NewUserRepository()
	app.Logger.Info("In-memory user store initialized.")

	// 4. Initialize Services
	app.UserService = service.NewUserService(app.UserRepository)
	app.TodoService = service.NewTodoService(app.UserRepository)
	app.Logger.Info("Services initialized.")

	// 5. Initialize HTTP Handlers, Guards and Router
	userHandler := handler.NewUserHandler(app.UserService, app.Logger)
	todoHandler := handler.NewTodoHandler(app.TodoService, app.Logger)
	guard := handler.NewGuard(app.UserRepository, app.Config.FreeTodoLimit, app.Logger)
	app.HTTPHandler = router.NewRouter(userHandler, todoHandler, guard, app.Config.CORSAllowedOrigins, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
// The store lives in process memory, so there is nothing to flush or close.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
