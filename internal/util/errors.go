// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidBody     = errors.New("invalid request body")
	ErrUserNotFound    = errors.New("user not found")
	ErrOwnerNotFound   = errors.New("todo owner not found") // user lookup miss on the todo guard path
	ErrTodoNotFound    = errors.New("todo not found")
	ErrUsernameTaken   = errors.New("username already exists")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidTodoID   = errors.New("invalid todo id")
	ErrQuotaExceeded   = errors.New("free tier todo quota exceeded")
	ErrAlreadyPro      = errors.New("pro plan already activated")
	ErrInvalidDeadline = errors.New("invalid deadline")
)

// IsError reports whether err matches the target sentinel error.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
