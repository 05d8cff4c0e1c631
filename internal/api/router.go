// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"todo-service/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(userHandler *handler.UserHandler, todoHandler *handler.TodoHandler, guard *handler.Guard, allowedOrigins []string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)                       // Add a request ID to the context
	r.Use(middleware.RealIP)                          // Use the real IP address
	r.Use(middleware.Logger)                          // Log HTTP requests
	r.Use(middleware.Recoverer)                       // Recover from panics and return 500
	r.Use(middleware.Timeout(handler.DefaultTimeout)) // Set a default timeout for requests

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// User API routes
	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.Register)
		r.Route("/{userID}", func(r chi.Router) {
			r.Use(guard.UserCtx)
			r.Get("/", userHandler.Get)
			r.Patch("/pro", userHandler.UpgradeToPro)
		})
	})

	// Todo API routes; the caller is identified by the "username" header
	r.Route("/todos", func(r chi.Router) {
		r.With(guard.AccountCtx).Get("/", todoHandler.List)
		r.With(guard.AccountCtx, guard.CreateQuota).Post("/", todoHandler.Create)
		r.Route("/{todoID}", func(r chi.Router) {
			r.With(guard.TodoCtx).Put("/", todoHandler.Update)
			r.With(guard.TodoCtx).Patch("/done", todoHandler.MarkDone)
			r.With(guard.AccountCtx, guard.TodoCtx).Delete("/", todoHandler.Delete)
		})
	})

	// CORS wraps the whole router, mirroring the original service's open API
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"*"},
	})

	return c.Handler(r)
}
