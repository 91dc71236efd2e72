package rest

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
	"github.com/heartmarshall/chartboard-backend/pkg/ctxutil"
)

// actingUser resolves the user a dashboard or query request acts as.
//
// A verified principal is authoritative: the body userId must be empty or
// equal to it. The development principal acts as the body userId when one is
// given. Anonymous requests must name the user in the body.
func actingUser(r *http.Request, bodyUserID string) (uuid.UUID, error) {
	p, authenticated := ctxutil.PrincipalFromCtx(r.Context())

	var claimed uuid.UUID
	if bodyUserID != "" {
		id, err := uuid.Parse(bodyUserID)
		if err != nil {
			return uuid.Nil, domain.NewValidationError("userId", "invalid")
		}
		claimed = id
	}

	switch {
	case authenticated && !p.Dev:
		if claimed != uuid.Nil && claimed != p.UserID {
			return uuid.Nil, domain.NewForbiddenError("userId does not match the authenticated user")
		}
		return p.UserID, nil
	case claimed != uuid.Nil:
		return claimed, nil
	case authenticated:
		return p.UserID, nil
	default:
		return uuid.Nil, domain.NewValidationError("userId", "required")
	}
}

// principal returns the request principal. Routes that need one are wrapped
// in RequireAuth, so a missing principal reports as unauthorized.
func principal(r *http.Request) (domain.Principal, error) {
	p, ok := ctxutil.PrincipalFromCtx(r.Context())
	if !ok {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	return p, nil
}
