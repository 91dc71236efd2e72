package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/auth"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

// Register creates an active user with a password. The very first user
// receives the admin role when it exists.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(s.cfg.MinPasswordLen); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Serializes the first-user check so only one account becomes admin.
		if err := s.users.LockSignups(txCtx); err != nil {
			return err
		}
		count, err := s.users.Count(txCtx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}

		var roleID *uuid.UUID
		if count == 0 {
			role, err := s.roles.GetByName(txCtx, auth.AdminRoleName)
			switch {
			case err == nil:
				roleID = &role.ID
			case !errors.Is(err, domain.ErrNotFound):
				return fmt.Errorf("get admin role: %w", err)
			}
		}

		now := time.Now()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hash,
			RoleID:       roleID,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		created = user
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewConflictError("username or email already exists")
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueToken(created)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID.String()),
		slog.Bool("admin", created.RoleID != nil),
	)
	return result, nil
}
