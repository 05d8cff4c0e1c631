// internal/api/handler/guard.go
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"todo-service/internal/domain"
	"todo-service/internal/repository"
	"todo-service/internal/util"
	"todo-service/pkg/ids"
)

// ctxKey is the type for request-context keys used by the guards.
type ctxKey int

const (
	userCtxKey ctxKey = iota
	todoCtxKey
)

// Guard holds the route middlewares that resolve entities before a handler
// runs. Each guard either attaches its resolved entity to the request context
// or short-circuits with a JSON error response.
type Guard struct {
	users         repository.UserRepository
	freeTodoLimit int
	logger        *slog.Logger
}

// NewGuard creates a new Guard.
func NewGuard(users repository.UserRepository, freeTodoLimit int, logger *slog.Logger) *Guard {
	return &Guard{
		users:         users,
		freeTodoLimit: freeTodoLimit,
		logger:        logger,
	}
}

// AccountCtx resolves the caller's user account from the "username" header.
// The header value is trusted as-is; there is no token scheme.
func (g *Guard) AccountCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username := r.Header.Get("username")
		user, err := g.users.FindByUsername(r.Context(), username)
		if err != nil {
			if util.IsError(err, util.ErrNotFound) {
				err = util.ErrUserNotFound
			}
			respondError(w, g.logger, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// UserCtx resolves a user from the {userID} path parameter. A malformed id is
// reported as 404, same status as a lookup miss.
func (g *Guard) UserCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "userID")
		if !ids.Valid(id) {
			respondError(w, g.logger, util.ErrInvalidUserID)
			return
		}
		user, err := g.users.FindByID(r.Context(), id)
		if err != nil {
			if util.IsError(err, util.ErrNotFound) {
				err = util.ErrUserNotFound
			}
			respondError(w, g.logger, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// TodoCtx resolves a todo from the {todoID} path parameter, scoped to the
// caller identified by the "username" header. A malformed todo id is a 400,
// unlike the 404 of the user-id path.
func (g *Guard) TodoCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username := r.Header.Get("username")
		user, err := g.users.FindByUsername(r.Context(), username)
		if err != nil {
			if util.IsError(err, util.ErrNotFound) {
				err = util.ErrOwnerNotFound
			}
			respondError(w, g.logger, err)
			return
		}

		todoID := chi.URLParam(r, "todoID")
		if !ids.Valid(todoID) {
			respondError(w, g.logger, util.ErrInvalidTodoID)
			return
		}

		todo, err := g.users.FindTodo(r.Context(), user.ID, todoID)
		if err != nil {
			if util.IsError(err, util.ErrNotFound) {
				err = util.ErrTodoNotFound
			}
			respondError(w, g.logger, err)
			return
		}

		ctx := withTodo(withUser(r.Context(), user), todo)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CreateQuota refuses todo creation for non-pro users already holding the
// free-tier limit. It checks the user resolved by AccountCtx, which must run
// earlier in the chain.
func (g *Guard) CreateQuota(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			respondError(w, g.logger, errors.New("no user in request context"))
			return
		}
		if !user.Pro && len(user.Todos) >= g.freeTodoLimit {
			respondError(w, g.logger, util.ErrQuotaExceeded)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

func withTodo(ctx context.Context, todo *domain.Todo) context.Context {
	return context.WithValue(ctx, todoCtxKey, todo)
}

// userFromContext returns the user attached by AccountCtx, UserCtx or TodoCtx.
func userFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userCtxKey).(*domain.User)
	return user, ok
}

// todoFromContext returns the todo attached by TodoCtx.
func todoFromContext(ctx context.Context) (*domain.Todo, bool) {
	todo, ok := ctx.Value(todoCtxKey).(*domain.Todo)
	return todo, ok
}
