package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

// AddComment appends a comment by the acting user. Anyone who can view the
// dashboard can comment.
func (s *Service) AddComment(ctx context.Context, userID, id uuid.UUID, text string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError("text", "required")
	}
	if len(text) > maxCommentLen {
		return nil, domain.NewValidationError("text", "too long")
	}

	u, d, err := s.authorize(ctx, userID, id, domain.TierView, "you don't have access to this dashboard")
	if err != nil {
		return nil, fmt.Errorf("dashboard.AddComment: %w", err)
	}

	now := time.Now()
	c := domain.Comment{
		ID:        uuid.New(),
		AuthorID:  u.ID,
		Username:  u.Username,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	d.AddComment(c)
	if err := s.save(ctx, d); err != nil {
		return nil, fmt.Errorf("dashboard.AddComment: %w", err)
	}
	return &c, nil
}

// ListComments returns the comments of a dashboard the acting user may view.
func (s *Service) ListComments(ctx context.Context, userID, id uuid.UUID) ([]domain.Comment, error) {
	_, d, err := s.authorize(ctx, userID, id, domain.TierView, "you don't have access to this dashboard")
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListComments: %w", err)
	}
	if d.Comments == nil {
		return []domain.Comment{}, nil
	}
	return d.Comments, nil
}

// DeleteComment removes a comment. Only its author or the dashboard owner
// may delete it.
func (s *Service) DeleteComment(ctx context.Context, userID, id, commentID uuid.UUID) error {
	_, d, err := s.authorize(ctx, userID, id, domain.TierNone, "")
	if err != nil {
		return fmt.Errorf("dashboard.DeleteComment: %w", err)
	}

	c, ok := d.Comment(commentID)
	if !ok {
		return fmt.Errorf("dashboard.DeleteComment: comment %s: %w", commentID, domain.ErrNotFound)
	}
	if !d.CanDeleteComment(c, userID) {
		return domain.NewForbiddenError("you don't have permission to delete this comment")
	}

	d.RemoveComment(commentID)
	if err := s.save(ctx, d); err != nil {
		return fmt.Errorf("dashboard.DeleteComment: %w", err)
	}
	return nil
}
