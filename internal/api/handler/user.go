// internal/api/handler/user.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"todo-service/internal/service"
	"todo-service/internal/util"
)

// UserHandler handles HTTP requests related to user accounts.
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: svc,
		logger:  logger,
	}
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Register handles the create user request.
// POST /users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, util.ErrInvalidBody)
		return
	}

	user, err := h.service.Register(r.Context(), req.Name, req.Username)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, user)
}

// Get handles the fetch user request. The user is resolved by the UserCtx guard.
// GET /users/{userID}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, errors.New("no user in request context"))
		return
	}

	respondJSON(w, h.logger, http.StatusOK, user)
}

// UpgradeToPro handles the pro plan activation request.
// PATCH /users/{userID}/pro
func (h *UserHandler) UpgradeToPro(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, errors.New("no user in request context"))
		return
	}

	updated, err := h.service.UpgradeToPro(r.Context(), user.ID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, updated)
}
