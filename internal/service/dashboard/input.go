package dashboard

import (
	"strings"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

const (
	maxNameLen        = 200
	maxDescriptionLen = 2000
	maxCommentLen     = 5000
)

// CreateInput holds parameters for dashboard creation.
type CreateInput struct {
	Name        string
	Description string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for a dashboard update. Nil fields are left
// unchanged; an empty name is ignored.
type UpdateInput struct {
	Name        *string
	Description *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil && len(*i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ShareInput holds parameters for sharing a dashboard.
type ShareInput struct {
	TargetUsername string
	Permission     string
}

// Validate validates the share input and returns the parsed tier.
func (i ShareInput) Validate() (domain.Tier, error) {
	var errs []domain.FieldError

	if strings.TrimSpace(i.TargetUsername) == "" {
		errs = append(errs, domain.FieldError{Field: "targetUsername", Message: "required"})
	}

	tier, ok := domain.ParseTier(i.Permission)
	if i.Permission == "" {
		errs = append(errs, domain.FieldError{Field: "permission", Message: "required"})
	} else if !ok {
		errs = append(errs, domain.FieldError{Field: "permission", Message: "must be one of view, edit, admin"})
	}

	if len(errs) > 0 {
		return domain.TierNone, &domain.ValidationError{Errors: errs}
	}
	return tier, nil
}
