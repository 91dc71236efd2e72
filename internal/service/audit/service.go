// Package audit reads the append-only audit trail.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

type auditRepo interface {
	GetByID(ctx context.Context, id string) (*domain.AuditLog, error)
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditLog, error)
}

// Service exposes audit queries. Entries are written by the services that
// perform the audited mutations.
type Service struct {
	log   *slog.Logger
	audit auditRepo
}

// NewService creates a new audit service instance.
func NewService(logger *slog.Logger, audit auditRepo) *Service {
	return &Service{log: logger.With("service", "audit"), audit: audit}
}

// List returns every entry, newest first.
func (s *Service) List(ctx context.Context) ([]domain.AuditLog, error) {
	return s.list(ctx, domain.AuditFilter{})
}

// Get returns a single entry.
func (s *Service) Get(ctx context.Context, id string) (*domain.AuditLog, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "required")
	}
	entry, err := s.audit.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("audit.Get: %w", err)
	}
	return entry, nil
}

// ByTargetUser returns entries about userID.
func (s *Service) ByTargetUser(ctx context.Context, userID uuid.UUID) ([]domain.AuditLog, error) {
	return s.list(ctx, domain.AuditFilter{TargetUserID: &userID})
}

// ByAction returns entries of one action. Unknown actions are a
// validation error.
func (s *Service) ByAction(ctx context.Context, action string) ([]domain.AuditLog, error) {
	a := domain.AuditAction(action)
	if !a.IsValid() {
		return nil, domain.NewValidationError("action", "invalid action")
	}
	return s.list(ctx, domain.AuditFilter{Action: &a})
}

// ByPerformer returns entries performed by adminID.
func (s *Service) ByPerformer(ctx context.Context, adminID uuid.UUID) ([]domain.AuditLog, error) {
	return s.list(ctx, domain.AuditFilter{PerformedBy: &adminID})
}

func (s *Service) list(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditLog, error) {
	entries, err := s.audit.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("audit.List: %w", err)
	}
	return entries, nil
}
