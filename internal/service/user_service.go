// internal/service/user_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"todo-service/internal/domain"
	"todo-service/internal/repository"
	"todo-service/internal/util"
)

// UserService defines the interface for user account business logic.
type UserService interface {
	// Register creates a new user account with a unique username.
	Register(ctx context.Context, name, username string) (*domain.User, error)
	// UpgradeToPro activates the pro plan on the user. One-way.
	UpgradeToPro(ctx context.Context, userID string) (*domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a new user. Username uniqueness is enforced here, at the
// write boundary, since the store itself performs no uniqueness check.
func (s *userService) Register(ctx context.Context, name, username string) (*domain.User, error) {
	_, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil, util.ErrUsernameTaken
	}
	if !errors.Is(err, util.ErrNotFound) {
		return nil, fmt.Errorf("register: failed to check existing username '%s': %w", username, err)
	}

	user := domain.NewUser(name, username)
	if err := s.userRepo.Append(ctx, user); err != nil {
		return nil, fmt.Errorf("register: failed to store user: %w", err)
	}
	return user, nil
}

// UpgradeToPro flips the pro flag. A second activation attempt is refused.
func (s *userService) UpgradeToPro(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("upgrade to pro: failed to get user %s: %w", userID, err)
	}
	if user.Pro {
		return nil, util.ErrAlreadyPro
	}

	updated, err := s.userRepo.MarkPro(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("upgrade to pro: failed to update user %s: %w", userID, err)
	}
	return updated, nil
}
