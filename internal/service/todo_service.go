// internal/service/todo_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todo-service/internal/domain"
	"todo-service/internal/repository"
	"todo-service/internal/util"
)

// deadlineFormats are the accepted textual forms for a todo deadline, tried in
// order: full RFC 3339 timestamps and plain calendar dates.
var deadlineFormats = []string{time.RFC3339, "2006-01-02"}

// TodoService defines the interface for todo business logic. Callers are
// expected to have resolved the owning user already (the route guards do
// existence and quota checks), so these operations act by id.
type TodoService interface {
	Create(ctx context.Context, userID, title, deadline string) (*domain.Todo, error)
	Update(ctx context.Context, userID, todoID, title, deadline string) (*domain.Todo, error)
	MarkDone(ctx context.Context, userID, todoID string) (*domain.Todo, error)
	Delete(ctx context.Context, userID, todoID string) error
}

// todoService implements the TodoService interface.
type todoService struct {
	userRepo repository.UserRepository
}

// NewTodoService creates a new instance of TodoService.
func NewTodoService(userRepo repository.UserRepository) TodoService {
	return &todoService{userRepo: userRepo}
}

// Create builds a new todo (fresh id, done=false, created_at=now) and appends
// it to the user's collection.
func (s *todoService) Create(ctx context.Context, userID, title, deadline string) (*domain.Todo, error) {
	due, err := parseDeadline(deadline)
	if err != nil {
		return nil, err
	}

	todo := domain.NewTodo(title, due)
	if err := s.userRepo.AddTodo(ctx, userID, todo); err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("create todo: failed to store todo for user %s: %w", userID, err)
	}
	return todo, nil
}

// Update overwrites title and deadline of an existing todo.
func (s *todoService) Update(ctx context.Context, userID, todoID, title, deadline string) (*domain.Todo, error) {
	due, err := parseDeadline(deadline)
	if err != nil {
		return nil, err
	}

	todo, err := s.userRepo.UpdateTodo(ctx, userID, todoID, title, due)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrTodoNotFound
		}
		return nil, fmt.Errorf("update todo: failed to update todo %s: %w", todoID, err)
	}
	return todo, nil
}

// MarkDone sets done=true. Marking an already-done todo again succeeds and
// leaves done=true, so the operation is idempotent.
func (s *todoService) MarkDone(ctx context.Context, userID, todoID string) (*domain.Todo, error) {
	todo, err := s.userRepo.MarkTodoDone(ctx, userID, todoID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrTodoNotFound
		}
		return nil, fmt.Errorf("mark done: failed to update todo %s: %w", todoID, err)
	}
	return todo, nil
}

// Delete removes the todo from its owner's collection. The guard has already
// resolved the todo, but the store re-checks and reports a miss as not found.
func (s *todoService) Delete(ctx context.Context, userID, todoID string) error {
	if err := s.userRepo.RemoveTodo(ctx, userID, todoID); err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return util.ErrTodoNotFound
		}
		return fmt.Errorf("delete todo: failed to remove todo %s: %w", todoID, err)
	}
	return nil
}

// parseDeadline converts a caller-supplied date string into a UTC timestamp.
// Unparseable input is rejected rather than stored as an undefined date.
func parseDeadline(deadline string) (time.Time, error) {
	for _, layout := range deadlineFormats {
		if t, err := time.Parse(layout, deadline); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, util.ErrInvalidDeadline
}
