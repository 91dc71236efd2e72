package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

// Refresh exchanges a valid token for a new one. The token owner must still
// exist and be active.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	claims, err := s.tokens.ValidateToken(input.Token)
	if err != nil {
		return "", domain.NewForbiddenError("invalid token")
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for unknown user", slog.String("user_id", claims.UserID.String()))
			return "", domain.NewForbiddenError("cannot refresh token")
		}
		return "", fmt.Errorf("auth.Refresh get user: %w", err)
	}
	if !user.IsActive || user.IsDeleted() {
		return "", domain.NewForbiddenError("cannot refresh token")
	}

	result, err := s.issueToken(user)
	if err != nil {
		return "", fmt.Errorf("auth.Refresh: %w", err)
	}
	return result.Token, nil
}
