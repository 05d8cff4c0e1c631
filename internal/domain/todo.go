// internal/domain/todo.go
package domain

import (
	"time"

	"todo-service/pkg/ids"
)

// Todo represents a single todo item belonging to exactly one User.
// It is never addressable outside its owner's collection.
type Todo struct {
	ID        string    `json:"id"`         // Random identifier, immutable
	Title     string    `json:"title"`      // Mutable via update
	Deadline  time.Time `json:"deadline"`   // Mutable via update
	Done      bool      `json:"done"`       // One-way false -> true via the done operation
	CreatedAt time.Time `json:"created_at"` // Fixed at creation
}

// NewTodo creates a new Todo instance with a fresh id, not yet done.
func NewTodo(title string, deadline time.Time) *Todo {
	return &Todo{
		ID:        ids.New(),
		Title:     title,
		Deadline:  deadline,
		Done:      false,
		CreatedAt: time.Now().UTC(),
	}
}
