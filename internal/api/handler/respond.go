// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"todo-service/internal/api/types"
	"todo-service/internal/util"
)

// DefaultTimeout is the per-request timeout applied by the router.
const DefaultTimeout = 60 * time.Second

// respondJSON sends a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, logger *slog.Logger, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondError maps a domain error to its HTTP status code and wire message.
// The malformed-id statuses are deliberately asymmetric (404 on the user path,
// 400 on the todo path), matching the service's published contract.
func respondError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidBody):
		statusCode = http.StatusBadRequest
		message = "Invalid request body"
	case util.IsError(err, util.ErrUsernameTaken):
		statusCode = http.StatusBadRequest
		message = "Username already exists"
	case util.IsError(err, util.ErrInvalidUserID):
		statusCode = http.StatusNotFound
		message = "Invalid id"
	case util.IsError(err, util.ErrUserNotFound):
		statusCode = http.StatusNotFound
		message = "User does not exists"
	case util.IsError(err, util.ErrOwnerNotFound):
		statusCode = http.StatusNotFound
		message = "User not found"
	case util.IsError(err, util.ErrInvalidTodoID):
		statusCode = http.StatusBadRequest
		message = "Invalid TODO"
	case util.IsError(err, util.ErrTodoNotFound):
		statusCode = http.StatusNotFound
		message = "Todo not found"
	case util.IsError(err, util.ErrQuotaExceeded):
		statusCode = http.StatusForbidden
		message = "Only pro accounts can post more than 10 TODOS"
	case util.IsError(err, util.ErrAlreadyPro):
		statusCode = http.StatusBadRequest
		message = "Pro plan is already activated."
	case util.IsError(err, util.ErrInvalidDeadline):
		statusCode = http.StatusBadRequest
		message = "Invalid deadline"
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondJSON(w, logger, statusCode, types.ErrorResponse{Error: message})
}
