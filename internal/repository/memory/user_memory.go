// internal/repository/memory/user_memory.go
package memory

import (
	"context"
	"sync"
	"time"

	"todo-service/internal/domain"
	"todo-service/internal/repository"
	"todo-service/internal/util"
)

// UserRepository implements repository.UserRepository with an in-memory,
// process-lifetime collection. A single RWMutex around the ordered slice is
// the consistency boundary for the whole store; lookups return deep copies so
// callers never hold references into the guarded collection.
type UserRepository struct {
	mu    sync.RWMutex
	users []*domain.User
}

// NewUserRepository creates an empty in-memory UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Append inserts a new user at the end of the collection.
// Username uniqueness is the caller's responsibility.
func (r *UserRepository) Append(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, copyUser(user))
	return nil
}

// FindByUsername retrieves a user by username: linear scan, first match.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, util.ErrNotFound
}

// FindByID retrieves a user by id: linear scan, first match.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return copyUser(u), nil
		}
	}
	return nil, util.ErrNotFound
}

// MarkPro flips the user's pro flag to true and returns the updated user.
func (r *UserRepository) MarkPro(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.findByIDLocked(userID)
	if err != nil {
		return nil, err
	}
	u.Pro = true
	return copyUser(u), nil
}

// AddTodo appends a todo to the end of the user's collection.
func (r *UserRepository) AddTodo(ctx context.Context, userID string, todo *domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.findByIDLocked(userID)
	if err != nil {
		return err
	}
	u.Todos = append(u.Todos, *todo)
	return nil
}

// FindTodo retrieves a todo by id within the user's collection.
func (r *UserRepository) FindTodo(ctx context.Context, userID, todoID string) (*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, err := r.findByIDLocked(userID)
	if err != nil {
		return nil, err
	}
	for i := range u.Todos {
		if u.Todos[i].ID == todoID {
			t := u.Todos[i]
			return &t, nil
		}
	}
	return nil, util.ErrNotFound
}

// UpdateTodo overwrites title and deadline of the todo in place.
func (r *UserRepository) UpdateTodo(ctx context.Context, userID, todoID, title string, deadline time.Time) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.findByIDLocked(userID)
	if err != nil {
		return nil, err
	}
	for i := range u.Todos {
		if u.Todos[i].ID == todoID {
			u.Todos[i].Title = title
			u.Todos[i].Deadline = deadline
			t := u.Todos[i]
			return &t, nil
		}
	}
	return nil, util.ErrNotFound
}

// MarkTodoDone flips the todo's done flag to true. Repeats are not an error.
func (r *UserRepository) MarkTodoDone(ctx context.Context, userID, todoID string) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.findByIDLocked(userID)
	if err != nil {
		return nil, err
	}
	for i := range u.Todos {
		if u.Todos[i].ID == todoID {
			u.Todos[i].Done = true
			t := u.Todos[i]
			return &t, nil
		}
	}
	return nil, util.ErrNotFound
}

// RemoveTodo deletes the todo from the user's collection, preserving order.
func (r *UserRepository) RemoveTodo(ctx context.Context, userID, todoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.findByIDLocked(userID)
	if err != nil {
		return err
	}
	for i := range u.Todos {
		if u.Todos[i].ID == todoID {
			u.Todos = append(u.Todos[:i], u.Todos[i+1:]...)
			return nil
		}
	}
	return util.ErrNotFound
}

// findByIDLocked locates the live (uncopied) user entry. Callers must hold the lock.
func (r *UserRepository) findByIDLocked(id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, util.ErrNotFound
}

// copyUser returns a deep copy of u, including its todo collection.
func copyUser(u *domain.User) *domain.User {
	c := *u
	c.Todos = make([]domain.Todo, len(u.Todos))
	copy(c.Todos, u.Todos)
	return &c
}

var _ repository.UserRepository = (*UserRepository)(nil)
