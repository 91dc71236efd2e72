package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/auth"
	"github.com/heartmarshall/chartboard-backend/internal/config"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	LockSignups(ctx context.Context) error
}

// roleRepo defines the role repository interface needed by auth service.
type roleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// tokenManager defines the bearer token interface needed by auth service.
type tokenManager interface {
	GenerateToken(userID uuid.UUID, username string) (string, error)
	ValidateToken(token string) (auth.Claims, error)
}

// passwordHasher defines the password hashing interface needed by auth service.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Service implements registration, login and principal resolution.
type Service struct {
	log    *slog.Logger
	users  userRepo
	roles  roleRepo
	tx     txManager
	tokens tokenManager
	hasher passwordHasher
	cfg    config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	roles roleRepo,
	tx txManager,
	tokens tokenManager,
	hasher passwordHasher,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		roles:  roles,
		tx:     tx,
		tokens: tokens,
		hasher: hasher,
		cfg:    cfg,
	}
}

// AuthResult pairs a freshly signed bearer token with its user.
type AuthResult struct {
	Token string
	User  *domain.User
}

// issueToken signs a bearer token for user and wraps it into an AuthResult.
func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}
