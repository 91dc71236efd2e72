// Package dashboard implements the dashboard aggregate: ownership, sharing,
// card references and comments, all guarded by the access policy.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

type dashboardRepo interface {
	Create(ctx context.Context, d *domain.Dashboard) (*domain.Dashboard, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error)
	Update(ctx context.Context, d *domain.Dashboard) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAccessible(ctx context.Context, userID uuid.UUID) ([]domain.Dashboard, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Dashboard, error)
	ListSharedWith(ctx context.Context, userID uuid.UUID) ([]domain.Dashboard, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Service implements dashboard operations. Every operation takes the id of
// the acting user, which must reference a live user.
type Service struct {
	log        *slog.Logger
	dashboards dashboardRepo
	users      userRepo
}

// NewService creates a new dashboard service instance.
func NewService(logger *slog.Logger, dashboards dashboardRepo, users userRepo) *Service {
	return &Service{
		log:        logger.With("service", "dashboard"),
		dashboards: dashboards,
		users:      users,
	}
}

// actingUser loads the acting user. Deleted users do not exist for
// dashboard purposes.
func (s *Service) actingUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("userId", "required")
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.IsDeleted() {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return u, nil
}

// authorize loads the acting user and the dashboard and checks that the user
// holds the required tier.
func (s *Service) authorize(ctx context.Context, userID, dashboardID uuid.UUID, required domain.Tier, denied string) (*domain.User, *domain.Dashboard, error) {
	u, err := s.actingUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	d, err := s.dashboards.GetByID(ctx, dashboardID)
	if err != nil {
		return nil, nil, err
	}
	if required != domain.TierNone && !domain.CanAccess(d, u.ID, required) {
		return nil, nil, domain.NewForbiddenError(denied)
	}
	return u, d, nil
}
