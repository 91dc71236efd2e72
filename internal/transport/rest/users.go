package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
	"github.com/heartmarshall/chartboard-backend/internal/service/user"
)

type userService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, actor domain.Principal, id uuid.UUID, input user.UpdateInput) (*domain.User, error)
	Deactivate(ctx context.Context, actor domain.Principal, id uuid.UUID) (*domain.User, error)
	Activate(ctx context.Context, actor domain.Principal, id uuid.UUID) (*domain.User, error)
	Delete(ctx context.Context, actor domain.Principal, id uuid.UUID) (*domain.User, error)
	AssignRole(ctx context.Context, actor domain.Principal, id uuid.UUID, roleID uuid.UUID) (*domain.User, error)
}

// UserHandler serves /users.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "users")}
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type assignRoleRequest struct {
	RoleID string `json:"roleId"`
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	u, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Update handles PUT /users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.respond(w, r, func(actor domain.Principal) (*domain.User, error) {
		return h.svc.Update(r.Context(), actor, id, user.UpdateInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		})
	})
}

// Deactivate handles PATCH /users/{id}/deactivate.
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	h.respond(w, r, func(actor domain.Principal) (*domain.User, error) {
		return h.svc.Deactivate(r.Context(), actor, id)
	})
}

// Activate handles PATCH /users/{id}/activate.
func (h *UserHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	h.respond(w, r, func(actor domain.Principal) (*domain.User, error) {
		return h.svc.Activate(r.Context(), actor, id)
	})
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	h.respond(w, r, func(actor domain.Principal) (*domain.User, error) {
		return h.svc.Delete(r.Context(), actor, id)
	})
}

// AssignRole handles PATCH /users/{id}/assign-role.
func (h *UserHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req assignRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("roleId", "invalid"))
		return
	}

	h.respond(w, r, func(actor domain.Principal) (*domain.User, error) {
		return h.svc.AssignRole(r.Context(), actor, id, roleID)
	})
}

func (h *UserHandler) respond(w http.ResponseWriter, r *http.Request, fn func(actor domain.Principal) (*domain.User, error)) {
	actor, err := principal(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	u, err := fn(actor)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}
