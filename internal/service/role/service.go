// Package role manages named permission sets.
package role

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
	"github.com/heartmarshall/chartboard-backend/internal/ids"
)

type roleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Update(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepo interface {
	CountByRole(ctx context.Context, roleID uuid.UUID) (int, error)
}

type auditRepo interface {
	Log(ctx context.Context, entry domain.AuditLog) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements role operations. Every mutation is audited in the
// same transaction.
type Service struct {
	log   *slog.Logger
	roles roleRepo
	users userRepo
	audit auditRepo
	tx    txManager
}

// NewService creates a new role service instance.
func NewService(logger *slog.Logger, roles roleRepo, users userRepo, audit auditRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "role"),
		roles: roles,
		users: users,
		audit: audit,
		tx:    tx,
	}
}

// CreateInput holds parameters for role creation.
type CreateInput struct {
	Name        string
	Description string
	Permissions []string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Permissions == nil {
		errs = append(errs, domain.FieldError{Field: "permissions", Message: "must be an array"})
	}
	for _, p := range i.Permissions {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, domain.FieldError{Field: "permissions", Message: "must not contain empty values"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for a partial role update. Nil fields are
// left unchanged.
type UpdateInput struct {
	Name        *string
	Description *string
	Permissions []string
}

// List returns every role.
func (s *Service) List(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("role.List: %w", err)
	}
	return roles, nil
}

// Get returns a role by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Role, error) {
	r, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("role.Get: %w", err)
	}
	return r, nil
}

// Create stores a new role. Names are unique.
func (s *Service) Create(ctx context.Context, actor domain.Principal, input CreateInput) (*domain.Role, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Role
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		r, err := s.roles.Create(txCtx, &domain.Role{
			ID:          uuid.New(),
			Name:        input.Name,
			Description: input.Description,
			Permissions: dedupe(input.Permissions),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return err
		}
		created = r

		details := map[string]any{"roleName": r.Name, "permissions": r.Permissions}
		return s.audit.Log(txCtx, s.entry(domain.AuditRoleCreated, r.ID, actor, details, now))
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewConflictError("role already exists")
		}
		return nil, fmt.Errorf("role.Create: %w", err)
	}

	s.log.InfoContext(ctx, "role created",
		slog.String("role_id", created.ID.String()),
		slog.String("name", created.Name),
	)
	return created, nil
}

// Update changes name, description or the whole permission list.
func (s *Service) Update(ctx context.Context, actor domain.Principal, id uuid.UUID, input UpdateInput) (*domain.Role, error) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "cannot be empty")
		}
		input.Name = &name
	}

	return s.modify(ctx, actor, id, func(r *domain.Role) (map[string]any, error) {
		old := snapshot(r)
		if input.Name != nil {
			r.Name = *input.Name
		}
		if input.Description != nil {
			r.Description = *input.Description
		}
		if input.Permissions != nil {
			r.Permissions = dedupe(input.Permissions)
		}
		return map[string]any{"oldValues": old, "newValues": snapshot(r)}, nil
	})
}

// AddPermission appends perm to the role. Adding a held permission is a
// conflict.
func (s *Service) AddPermission(ctx context.Context, actor domain.Principal, id uuid.UUID, perm string) (*domain.Role, error) {
	perm = strings.TrimSpace(perm)
	if perm == "" {
		return nil, domain.NewValidationError("permission", "required")
	}

	return s.modify(ctx, actor, id, func(r *domain.Role) (map[string]any, error) {
		if r.HasPermission(perm) {
			return nil, domain.NewConflictError("permission already exists in role")
		}
		r.Permissions = append(r.Permissions, perm)
		return map[string]any{"action": "permission_added", "permission": perm, "roleName": r.Name}, nil
	})
}

// RemovePermission drops perm from the role. Removing a missing permission
// is a conflict.
func (s *Service) RemovePermission(ctx context.Context, actor domain.Principal, id uuid.UUID, perm string) (*domain.Role, error) {
	perm = strings.TrimSpace(perm)
	if perm == "" {
		return nil, domain.NewValidationError("permission", "required")
	}

	return s.modify(ctx, actor, id, func(r *domain.Role) (map[string]any, error) {
		if !r.HasPermission(perm) {
			return nil, domain.NewConflictError("permission does not exist in role")
		}
		r.Permissions = slices.DeleteFunc(r.Permissions, func(p string) bool { return p == perm })
		return map[string]any{"action": "permission_removed", "permission": perm, "roleName": r.Name}, nil
	})
}

// Delete removes a role that no user references.
func (s *Service) Delete(ctx context.Context, actor domain.Principal, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, err := s.roles.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		n, err := s.users.CountByRole(txCtx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.NewConflictError(fmt.Sprintf("cannot delete role: %d user(s) are assigned to this role", n))
		}

		if err := s.roles.Delete(txCtx, id); err != nil {
			return err
		}

		now := time.Now()
		details := map[string]any{"roleName": r.Name, "permissions": r.Permissions}
		return s.audit.Log(txCtx, s.entry(domain.AuditRoleDeleted, id, actor, details, now))
	})
	if err != nil {
		return fmt.Errorf("role.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "role deleted", slog.String("role_id", id.String()))
	return nil
}

func (s *Service) modify(
	ctx context.Context,
	actor domain.Principal,
	id uuid.UUID,
	change func(r *domain.Role) (map[string]any, error),
) (*domain.Role, error) {
	var updated *domain.Role
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, err := s.roles.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		details, err := change(r)
		if err != nil {
			return err
		}

		now := time.Now()
		r.UpdatedAt = now
		updated, err = s.roles.Update(txCtx, r)
		if err != nil {
			return err
		}
		return s.audit.Log(txCtx, s.entry(domain.AuditRoleModified, id, actor, details, now))
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewConflictError("role already exists")
		}
		return nil, fmt.Errorf("role.Update: %w", err)
	}

	s.log.InfoContext(ctx, "role modified", slog.String("role_id", id.String()))
	return updated, nil
}

func (s *Service) entry(action domain.AuditAction, roleID uuid.UUID, actor domain.Principal, details map[string]any, at time.Time) domain.AuditLog {
	return domain.AuditLog{
		ID:           ids.NewAt(at),
		Action:       action,
		TargetRoleID: &roleID,
		PerformedBy:  actor.UserID,
		Details:      details,
		CreatedAt:    at,
	}
}

func snapshot(r *domain.Role) map[string]any {
	return map[string]any{
		"name":        r.Name,
		"description": r.Description,
		"permissions": slices.Clone(r.Permissions),
	}
}

// dedupe returns perms without repeated values, keeping first occurrences.
func dedupe(perms []string) []string {
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}
