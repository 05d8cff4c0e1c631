// internal/repository/user_repo.go
package repository

import (
	"context"
	"time"

	"todo-service/internal/domain"
)

// UserRepository defines the interface for user and todo data operations.
//
// Append performs no username-uniqueness check: the store is a dumb ordered
// container and the uniqueness invariant is enforced by the service at the
// write boundary, before Append is called.
//
// Todo mutations are expressed as store operations (rather than writes to a
// returned User) so that every change to shared state happens under the
// implementation's consistency boundary and lookups can hand out safe copies.
type UserRepository interface {
	// Append inserts a new user at the end of the collection.
	Append(ctx context.Context, user *domain.User) error
	// FindByUsername retrieves a user by username, or ErrNotFound.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByID retrieves a user by id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// MarkPro flips the user's pro flag to true and returns the updated user.
	MarkPro(ctx context.Context, userID string) (*domain.User, error)

	// AddTodo appends a todo to the user's collection.
	AddTodo(ctx context.Context, userID string, todo *domain.Todo) error
	// FindTodo retrieves a todo by id within the user's collection, or ErrNotFound.
	FindTodo(ctx context.Context, userID, todoID string) (*domain.Todo, error)
	// UpdateTodo overwrites title and deadline of the todo and returns it.
	UpdateTodo(ctx context.Context, userID, todoID, title string, deadline time.Time) (*domain.Todo, error)
	// MarkTodoDone flips the todo's done flag to true and returns it.
	// Marking an already-done todo again is not an error.
	MarkTodoDone(ctx context.Context, userID, todoID string) (*domain.Todo, error)
	// RemoveTodo deletes the todo from the user's collection, or ErrNotFound.
	RemoveTodo(ctx context.Context, userID, todoID string) error
}
