package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/auth"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
	"github.com/heartmarshall/chartboard-backend/internal/ids"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}

// roleRepo defines the role repository interface needed by user service.
type roleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Role, error)
}

// auditRepo defines the audit repository interface needed by user service.
type auditRepo interface {
	Log(ctx context.Context, entry domain.AuditLog) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// passwordHasher defines the password hashing interface needed by user service.
type passwordHasher interface {
	Hash(password string) (string, error)
}

// Service implements user administration.
type Service struct {
	log            *slog.Logger
	users          userRepo
	roles          roleRepo
	audit          auditRepo
	tx             txManager
	hasher         passwordHasher
	minPasswordLen int
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	roles roleRepo,
	audit auditRepo,
	tx txManager,
	hasher passwordHasher,
	minPasswordLen int,
) *Service {
	return &Service{
		log:            logger.With("service", "user"),
		users:          users,
		roles:          roles,
		audit:          audit,
		tx:             tx,
		hasher:         hasher,
		minPasswordLen: minPasswordLen,
	}
}

func isAdmin(p domain.Principal) bool {
	return p.HasAny(auth.AdminPermissions()...)
}

func auditEntry(action domain.AuditAction, target uuid.UUID, actor domain.Principal, details map[string]any, at time.Time) domain.AuditLog {
	return domain.AuditLog{
		ID:           ids.NewAt(at),
		Action:       action,
		TargetUserID: &target,
		PerformedBy:  actor.UserID,
		Details:      details,
		CreatedAt:    at,
	}
}
