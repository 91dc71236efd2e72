package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

// List returns every user that has not been deleted.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// Get returns a live user. Deleted users are reported as not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	if u.IsDeleted() {
		return nil, fmt.Errorf("user.Get: user %s: %w", id, domain.ErrNotFound)
	}
	return u, nil
}

// GetByUsername returns a live user by username.
func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user.GetByUsername: %w", err)
	}
	if u.IsDeleted() {
		return nil, fmt.Errorf("user.GetByUsername: user %s: %w", username, domain.ErrNotFound)
	}
	return u, nil
}

// Update changes username, email or password. Users may update themselves;
// anyone else needs an admin permission.
func (s *Service) Update(ctx context.Context, actor domain.Principal, id uuid.UUID, input UpdateInput) (*domain.User, error) {
	if actor.UserID != id && !isAdmin(actor) {
		return nil, domain.NewForbiddenError("cannot update another user")
	}

	input.normalize()
	if err := input.Validate(s.minPasswordLen); err != nil {
		return nil, err
	}

	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		u.Username = *input.Username
	}
	if input.Email != nil {
		u.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("user.Update hash password: %w", err)
		}
		u.PasswordHash = hash
	}
	u.UpdatedAt = time.Now()

	updated, err := s.users.Update(ctx, u)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewConflictError("username or email already exists")
		}
		return nil, fmt.Errorf("user.Update: %w", err)
	}

	s.log.InfoContext(ctx, "user updated",
		slog.String("user_id", id.String()),
		slog.String("actor_id", actor.UserID.String()),
	)
	return updated, nil
}
