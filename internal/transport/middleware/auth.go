package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/auth"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
	"github.com/heartmarshall/chartboard-backend/pkg/ctxutil"
)

type principalResolver interface {
	ResolvePrincipal(ctx context.Context, token string) (domain.Principal, error)
}

// devUserID is the fixed identity of the development principal.
var devUserID = uuid.MustParse("00000000-0000-0000-0000-00000000de00")

// DevPrincipal returns the principal attached to every request when
// authentication is disabled. It holds every admin permission.
func DevPrincipal() domain.Principal {
	return domain.Principal{
		UserID:      devUserID,
		Username:    "dev-user",
		Permissions: auth.AdminPermissions(),
		Dev:         true,
	}
}

// Auth resolves the bearer token into a principal and stores it in the
// request context. Requests without a token pass through anonymously.
// With disabled set, no token is checked and DevPrincipal is used instead.
func Auth(resolver principalResolver, disabled bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if disabled {
				next.ServeHTTP(w, r.WithContext(ctxutil.WithPrincipal(r.Context(), DevPrincipal())))
				return
			}

			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			p, err := resolver.ResolvePrincipal(r.Context(), token)
			if err != nil {
				var forbidden *domain.ForbiddenError
				if errors.As(err, &forbidden) {
					writeError(w, http.StatusForbidden, forbidden.Message)
					return
				}
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithPrincipal(r.Context(), p)))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
