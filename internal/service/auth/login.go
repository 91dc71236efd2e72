package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

// Login verifies username and password and issues a bearer token.
// Unknown users and wrong passwords both yield ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if user.IsDeleted() {
		return nil, domain.NewForbiddenError("account has been deleted")
	}
	if !user.IsActive {
		return nil, domain.NewForbiddenError("account is deactivated")
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		s.log.InfoContext(ctx, "login rejected", slog.String("user_id", user.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}
	return result, nil
}
