package user

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

// UpdateInput holds parameters for a user update. Nil fields are left
// unchanged.
type UpdateInput struct {
	Username *string
	Email    *string
	Password *string
}

func (i *UpdateInput) normalize() {
	if i.Username != nil {
		v := strings.TrimSpace(*i.Username)
		i.Username = &v
	}
	if i.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*i.Email))
		i.Email = &v
	}
}

// Validate validates the update input.
func (i UpdateInput) Validate(minPasswordLen int) error {
	var errs []domain.FieldError

	if i.Username != nil {
		if *i.Username == "" {
			errs = append(errs, domain.FieldError{Field: "username", Message: "cannot be empty"})
		} else if len(*i.Username) > 50 {
			errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
		}
	}

	if i.Email != nil {
		if *i.Email == "" {
			errs = append(errs, domain.FieldError{Field: "email", Message: "cannot be empty"})
		} else if _, err := mail.ParseAddress(*i.Email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
		}
	}

	if i.Password != nil {
		if len(*i.Password) < minPasswordLen {
			errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
		} else if len(*i.Password) > 72 {
			errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
