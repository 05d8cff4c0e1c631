// internal/api/handler/todo.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"todo-service/internal/service"
	"todo-service/internal/util"
)

// TodoHandler handles HTTP requests related to todo items.
type TodoHandler struct {
	service service.TodoService
	logger  *slog.Logger
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(svc service.TodoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{
		service: svc,
		logger:  logger,
	}
}

// TodoRequest represents the request body for creating or updating a todo.
type TodoRequest struct {
	Title    string `json:"title"`
	Deadline string `json:"deadline"`
}

// List handles the list todos request. The caller is resolved by AccountCtx.
// GET /todos
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, errors.New("no user in request context"))
		return
	}

	respondJSON(w, h.logger, http.StatusOK, user.Todos)
}

// Create handles the create todo request. AccountCtx resolves the caller and
// CreateQuota has already enforced the free-tier limit.
// POST /todos
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, errors.New("no user in request context"))
		return
	}

	var req TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, util.ErrInvalidBody)
		return
	}

	todo, err := h.service.Create(r.Context(), user.ID, req.Title, req.Deadline)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, todo)
}

// Update handles the update todo request. TodoCtx resolved both entities.
// PUT /todos/{todoID}
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, errors.New("no user in request context"))
		return
	}
	todo, ok := todoFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, errors.New("no todo in request context"))
		return
	}

	var req TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, util.ErrInvalidBody)
		return
	}

	updated, err := h.service.Update(r.Context(), user.ID, todo.ID, req.Title, req.Deadline)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, updated)
}

// MarkDone handles the mark done request. Repeat calls are accepted.
// PATCH /todos/{todoID}/done
func (h *TodoHandler) MarkDone(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, errors.New("no user in request context"))
		return
	}
	todo, ok := todoFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, errors.New("no todo in request context"))
		return
	}

	updated, err := h.service.MarkDone(r.Context(), user.ID, todo.ID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, updated)
}

// Delete handles the delete todo request.
// DELETE /todos/{todoID}
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, errors.New("no user in request context"))
		return
	}
	todo, ok := todoFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, errors.New("no todo in request context"))
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, todo.ID); err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
