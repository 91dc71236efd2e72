package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
	"github.com/heartmarshall/chartboard-backend/internal/service/role"
)

type roleService interface {
	List(ctx context.Context) ([]domain.Role, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Role, error)
	Create(ctx context.Context, actor domain.Principal, input role.CreateInput) (*domain.Role, error)
	Update(ctx context.Context, actor domain.Principal, id uuid.UUID, input role.UpdateInput) (*domain.Role, error)
	AddPermission(ctx context.Context, actor domain.Principal, id uuid.UUID, perm string) (*domain.Role, error)
	RemovePermission(ctx context.Context, actor domain.Principal, id uuid.UUID, perm string) (*domain.Role, error)
	Delete(ctx context.Context, actor domain.Principal, id uuid.UUID) error
}

// RoleHandler serves /roles.
type RoleHandler struct {
	svc roleService
	log *slog.Logger
}

// NewRoleHandler creates a RoleHandler.
func NewRoleHandler(svc roleService, logger *slog.Logger) *RoleHandler {
	return &RoleHandler{svc: svc, log: logger.With("handler", "roles")}
}

type createRoleRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

type updateRoleRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Permissions []string `json:"permissions"`
}

type permissionRequest struct {
	Permission string `json:"permission"`
}

// List handles GET /roles.
func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]roleResponse, 0, len(roles))
	for i := range roles {
		out = append(out, toRoleResponse(&roles[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /roles/{id}.
func (h *RoleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	ro, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoleResponse(ro))
}

// Create handles POST /roles.
func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	actor, err := principal(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ro, err := h.svc.Create(r.Context(), actor, role.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRoleResponse(ro))
}

// Update handles PUT /roles/{id}.
func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRoleRequest
	h.mutate(w, r, &req, func(actor domain.Principal, id uuid.UUID) (*domain.Role, error) {
		return h.svc.Update(r.Context(), actor, id, role.UpdateInput{
			Name:        req.Name,
			Description: req.Description,
			Permissions: req.Permissions,
		})
	})
}

// AddPermission handles POST /roles/{id}/permissions/add.
func (h *RoleHandler) AddPermission(w http.ResponseWriter, r *http.Request) {
	var req permissionRequest
	h.mutate(w, r, &req, func(actor domain.Principal, id uuid.UUID) (*domain.Role, error) {
		return h.svc.AddPermission(r.Context(), actor, id, req.Permission)
	})
}

// RemovePermission handles POST /roles/{id}/permissions/remove.
func (h *RoleHandler) RemovePermission(w http.ResponseWriter, r *http.Request) {
	var req permissionRequest
	h.mutate(w, r, &req, func(actor domain.Principal, id uuid.UUID) (*domain.Role, error) {
		return h.svc.RemovePermission(r.Context(), actor, id, req.Permission)
	})
}

// Delete handles DELETE /roles/{id}.
func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	actor, err := principal(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), actor, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "role deleted successfully"})
}

// mutate decodes the body into req and runs fn for the role in the path.
func (h *RoleHandler) mutate(w http.ResponseWriter, r *http.Request, req any, fn func(actor domain.Principal, id uuid.UUID) (*domain.Role, error)) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if !decodeJSON(w, r, req) {
		return
	}
	actor, err := principal(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ro, err := fn(actor, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoleResponse(ro))
}
