package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

// Deactivate marks a user inactive. Deactivating an inactive user is a
// conflict.
func (s *Service) Deactivate(ctx context.Context, actor domain.Principal, id uuid.UUID) (*domain.User, error) {
	return s.mutate(ctx, actor, id, domain.AuditUserDeactivated, func(ctx context.Context, u *domain.User, now time.Time) (map[string]any, error) {
		if !u.IsActive {
			return nil, domain.NewConflictError("user is already deactivated")
		}
		u.IsActive = false
		return map[string]any{"userId": u.ID.String(), "username": u.Username}, nil
	})
}

// Activate marks a user active again.
func (s *Service) Activate(ctx context.Context, actor domain.Principal, id uuid.UUID) (*domain.User, error) {
	return s.mutate(ctx, actor, id, domain.AuditUserActivated, func(ctx context.Context, u *domain.User, now time.Time) (map[string]any, error) {
		if u.IsActive {
			return nil, domain.NewConflictError("user is already active")
		}
		u.IsActive = true
		return map[string]any{"userId": u.ID.String(), "username": u.Username}, nil
	})
}

// Delete soft-deletes a user: it stamps deletedAt and deactivates the
// account. Deleting a deleted user is a conflict.
func (s *Service) Delete(ctx context.Context, actor domain.Principal, id uuid.UUID) (*domain.User, error) {
	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if u.IsDeleted() {
			return domain.NewConflictError("user is already deleted")
		}

		now := time.Now()
		u.DeletedAt = &now
		u.IsActive = false
		u.UpdatedAt = now

		updated, err = s.users.Update(txCtx, u)
		if err != nil {
			return err
		}

		details := map[string]any{"userId": u.ID.String(), "username": u.Username, "deletedAt": now}
		return s.audit.Log(txCtx, auditEntry(domain.AuditUserDeleted, u.ID, actor, details, now))
	})
	if err != nil {
		return nil, fmt.Errorf("user.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted",
		slog.String("user_id", id.String()),
		slog.String("actor_id", actor.UserID.String()),
	)
	return updated, nil
}

// AssignRole sets the role of a live user. The role must exist.
func (s *Service) AssignRole(ctx context.Context, actor domain.Principal, id uuid.UUID, roleID uuid.UUID) (*domain.User, error) {
	if roleID == uuid.Nil {
		return nil, domain.NewValidationError("roleId", "required")
	}

	return s.mutate(ctx, actor, id, domain.AuditUserRoleAssigned, func(ctx context.Context, u *domain.User, now time.Time) (map[string]any, error) {
		role, err := s.roles.GetByID(ctx, roleID)
		if err != nil {
			return nil, err
		}

		details := map[string]any{"username": u.Username, "newRole": role.ID.String(), "newRoleName": role.Name}
		if u.RoleID != nil {
			details["previousRole"] = u.RoleID.String()
		} else {
			details["previousRole"] = nil
		}
		u.RoleID = &role.ID
		return details, nil
	})
}

// mutate loads a live user, applies change and persists it together with
// an audit entry in one transaction.
func (s *Service) mutate(
	ctx context.Context,
	actor domain.Principal,
	id uuid.UUID,
	action domain.AuditAction,
	change func(ctx context.Context, u *domain.User, now time.Time) (map[string]any, error),
) (*domain.User, error) {
	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if u.IsDeleted() {
			return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
		}

		now := time.Now()
		details, err := change(txCtx, u, now)
		if err != nil {
			return err
		}
		u.UpdatedAt = now

		updated, err = s.users.Update(txCtx, u)
		if err != nil {
			return err
		}
		return s.audit.Log(txCtx, auditEntry(action, u.ID, actor, details, now))
	})
	if err != nil {
		return nil, fmt.Errorf("user.%s: %w", action, err)
	}

	s.log.InfoContext(ctx, "user changed",
		slog.String("action", string(action)),
		slog.String("user_id", id.String()),
		slog.String("actor_id", actor.UserID.String()),
	)
	return updated, nil
}
