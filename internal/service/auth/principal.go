package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

// ResolvePrincipal validates a bearer token and builds the caller's
// principal from the stored user and its role.
func (s *Service) ResolvePrincipal(ctx context.Context, token string) (domain.Principal, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return domain.Principal{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Principal{}, domain.ErrUnauthorized
		}
		return domain.Principal{}, fmt.Errorf("auth.ResolvePrincipal get user: %w", err)
	}
	if user.IsDeleted() {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return domain.Principal{}, domain.NewForbiddenError("account is deactivated")
	}

	p := domain.Principal{
		UserID:      user.ID,
		Username:    user.Username,
		RoleID:      user.RoleID,
		Permissions: []string{},
	}
	if user.RoleID == nil {
		return p, nil
	}

	role, err := s.roles.GetByID(ctx, *user.RoleID)
	switch {
	case err == nil:
		p.Permissions = append(p.Permissions, role.Permissions...)
	case errors.Is(err, domain.ErrNotFound):
		p.RoleID = nil
	default:
		return domain.Principal{}, fmt.Errorf("auth.ResolvePrincipal get role: %w", err)
	}
	return p, nil
}
