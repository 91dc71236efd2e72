package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

// Share grants the user named in input a tier on the dashboard. The acting
// user needs admin tier. Sharing again with the same user replaces the tier.
func (s *Service) Share(ctx context.Context, userID, id uuid.UUID, input ShareInput) (*domain.Dashboard, error) {
	input.TargetUsername = strings.TrimSpace(input.TargetUsername)
	tier, err := input.Validate()
	if err != nil {
		return nil, err
	}

	_, d, err := s.authorize(ctx, userID, id, domain.TierAdmin, "only the owner or admins can share this dashboard")
	if err != nil {
		return nil, fmt.Errorf("dashboard.Share: %w", err)
	}

	target, err := s.users.GetByUsername(ctx, input.TargetUsername)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Share: target: %w", err)
	}
	if target.IsDeleted() {
		return nil, fmt.Errorf("dashboard.Share: user %s: %w", input.TargetUsername, domain.ErrNotFound)
	}

	if target.ID == userID {
		return nil, domain.NewConflictError("cannot share a dashboard with yourself")
	}
	if d.IsOwner(target.ID) {
		return nil, domain.NewValidationError("targetUsername", "cannot share with dashboard owner")
	}

	d.UpsertShare(domain.ShareEntry{
		UserID:    target.ID,
		Username:  target.Username,
		Tier:      tier,
		GrantedAt: time.Now(),
	})
	if err := s.save(ctx, d); err != nil {
		return nil, fmt.Errorf("dashboard.Share: %w", err)
	}

	s.log.InfoContext(ctx, "dashboard shared",
		slog.String("dashboard_id", id.String()),
		slog.String("target_user_id", target.ID.String()),
		slog.String("permission", tier.String()),
	)
	return d, nil
}

// RevokeShare removes the share entry of targetID. The owner may revoke any
// entry; other users may only remove their own. Revoking a missing entry
// leaves the dashboard unchanged.
func (s *Service) RevokeShare(ctx context.Context, userID, id, targetID uuid.UUID) (*domain.Dashboard, error) {
	if targetID == uuid.Nil {
		return nil, domain.NewValidationError("targetUserId", "required")
	}

	_, d, err := s.authorize(ctx, userID, id, domain.TierNone, "")
	if err != nil {
		return nil, fmt.Errorf("dashboard.RevokeShare: %w", err)
	}
	if !d.IsOwner(userID) && targetID != userID {
		return nil, domain.NewForbiddenError("you don't have permission to remove this access")
	}

	if !d.RemoveShare(targetID) {
		return d, nil
	}
	if err := s.save(ctx, d); err != nil {
		return nil, fmt.Errorf("dashboard.RevokeShare: %w", err)
	}

	s.log.InfoContext(ctx, "dashboard share revoked",
		slog.String("dashboard_id", id.String()),
		slog.String("target_user_id", targetID.String()),
	)
	return d, nil
}
