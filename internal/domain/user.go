// internal/domain/user.go
package domain

import "todo-service/pkg/ids"

// User represents a registered account and owns its todo collection.
type User struct {
	ID       string `json:"id"`       // Random identifier, immutable
	Name     string `json:"name"`     // Display name, immutable after creation
	Username string `json:"username"` // Unique across all users; identifies the caller
	Pro      bool   `json:"pro"`      // One-way false -> true
	Todos    []Todo `json:"todos"`    // Ordered, owned exclusively by this user
}

// NewUser creates a new User instance with a fresh id, the free tier
// and an empty (non-nil, so it marshals as []) todo collection.
func NewUser(name, username string) *User {
	return &User{
		ID:       ids.New(),
		Name:     name,
		Username: username,
		Pro:      false,
		Todos:    []Todo{},
	}
}
