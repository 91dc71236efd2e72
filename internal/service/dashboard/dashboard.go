package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

// Create stores a new private dashboard owned by the acting user. A
// dashboard with the same name for the same owner is a conflict.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.Dashboard, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	owner, err := s.actingUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Create: %w", err)
	}

	now := time.Now()
	d, err := s.dashboards.Create(ctx, &domain.Dashboard{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     owner.ID,
		OwnerName:   owner.Username,
		IsPublic:    false,
		Shares:      []domain.ShareEntry{},
		Comments:    []domain.Comment{},
		Cards:       []int{},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewConflictError("dashboard with this name already exists")
		}
		return nil, fmt.Errorf("dashboard.Create: %w", err)
	}

	s.log.InfoContext(ctx, "dashboard created",
		slog.String("dashboard_id", d.ID.String()),
		slog.String("owner_id", owner.ID.String()),
	)
	return d, nil
}

// List returns the dashboards the acting user owns, is shared on, or can
// see because they are public.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]domain.Dashboard, error) {
	if _, err := s.actingUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("dashboard.List: %w", err)
	}
	list, err := s.dashboards.ListAccessible(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.List: %w", err)
	}
	return list, nil
}

// ListByOwner returns the dashboards owned by ownerID that the acting user
// may view.
func (s *Service) ListByOwner(ctx context.Context, userID, ownerID uuid.UUID) ([]domain.Dashboard, error) {
	if _, err := s.actingUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("dashboard.ListByOwner: %w", err)
	}
	if _, err := s.actingUser(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("dashboard.ListByOwner: %w", err)
	}

	owned, err := s.dashboards.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListByOwner: %w", err)
	}

	visible := make([]domain.Dashboard, 0, len(owned))
	for i := range owned {
		if domain.CanAccess(&owned[i], userID, domain.TierView) {
			visible = append(visible, owned[i])
		}
	}
	return visible, nil
}

// ListShared returns the dashboards holding a share entry for the acting
// user.
func (s *Service) ListShared(ctx context.Context, userID uuid.UUID) ([]domain.Dashboard, error) {
	if _, err := s.actingUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("dashboard.ListShared: %w", err)
	}
	list, err := s.dashboards.ListSharedWith(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListShared: %w", err)
	}
	return list, nil
}

// Get returns a dashboard the acting user may view.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Dashboard, error) {
	_, d, err := s.authorize(ctx, userID, id, domain.TierView, "access denied")
	if err != nil {
		return nil, fmt.Errorf("dashboard.Get: %w", err)
	}
	return d, nil
}

// Update changes name and description. Requires edit tier.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, input UpdateInput) (*domain.Dashboard, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, d, err := s.authorize(ctx, userID, id, domain.TierEdit, "you don't have permission to edit this dashboard")
	if err != nil {
		return nil, fmt.Errorf("dashboard.Update: %w", err)
	}

	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			d.Name = name
		}
	}
	if input.Description != nil {
		d.Description = *input.Description
	}

	if err := s.save(ctx, d); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewConflictError("dashboard with this name already exists")
		}
		return nil, fmt.Errorf("dashboard.Update: %w", err)
	}
	return d, nil
}

// Delete removes a dashboard. Only the owner may delete it.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	_, d, err := s.authorize(ctx, userID, id, domain.TierNone, "")
	if err != nil {
		return fmt.Errorf("dashboard.Delete: %w", err)
	}
	if !d.IsOwner(userID) {
		return domain.NewForbiddenError("only the owner can delete this dashboard")
	}

	if err := s.dashboards.Delete(ctx, id); err != nil {
		return fmt.Errorf("dashboard.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "dashboard deleted", slog.String("dashboard_id", id.String()))
	return nil
}

// SetPublic toggles public visibility. Only the owner may change it.
func (s *Service) SetPublic(ctx context.Context, userID, id uuid.UUID, public bool) (*domain.Dashboard, error) {
	_, d, err := s.authorize(ctx, userID, id, domain.TierNone, "")
	if err != nil {
		return nil, fmt.Errorf("dashboard.SetPublic: %w", err)
	}
	if !d.IsOwner(userID) {
		return nil, domain.NewForbiddenError("only the owner can change public status")
	}

	d.IsPublic = public
	if err := s.save(ctx, d); err != nil {
		return nil, fmt.Errorf("dashboard.SetPublic: %w", err)
	}
	return d, nil
}

func validateCardID(id int) error {
	switch {
	case id <= 0:
		return domain.NewValidationError("cardId", "required")
	case !domain.ValidCardID(id):
		return domain.NewValidationError("cardId", "out of range")
	}
	return nil
}

// AddCard references a remote card from the dashboard. Requires edit tier.
// Adding a present card leaves the list unchanged.
func (s *Service) AddCard(ctx context.Context, userID, id uuid.UUID, cardID int) (*domain.Dashboard, error) {
	if err := validateCardID(cardID); err != nil {
		return nil, err
	}

	_, d, err := s.authorize(ctx, userID, id, domain.TierEdit, "you don't have permission to edit this dashboard")
	if err != nil {
		return nil, fmt.Errorf("dashboard.AddCard: %w", err)
	}

	d.AddCard(cardID)
	if err := s.save(ctx, d); err != nil {
		return nil, fmt.Errorf("dashboard.AddCard: %w", err)
	}
	return d, nil
}

// RemoveCard drops a card reference. Requires edit tier.
func (s *Service) RemoveCard(ctx context.Context, userID, id uuid.UUID, cardID int) (*domain.Dashboard, error) {
	if err := validateCardID(cardID); err != nil {
		return nil, err
	}

	_, d, err := s.authorize(ctx, userID, id, domain.TierEdit, "you don't have permission to edit this dashboard")
	if err != nil {
		return nil, fmt.Errorf("dashboard.RemoveCard: %w", err)
	}

	d.RemoveCard(cardID)
	if err := s.save(ctx, d); err != nil {
		return nil, fmt.Errorf("dashboard.RemoveCard: %w", err)
	}
	return d, nil
}

func (s *Service) save(ctx context.Context, d *domain.Dashboard) error {
	d.UpdatedAt = time.Now()
	return s.dashboards.Update(ctx, d)
}
