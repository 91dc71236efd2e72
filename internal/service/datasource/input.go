package datasource

import (
	"strings"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

// CreateInput holds parameters for data source creation.
type CreateInput struct {
	Name        string
	Kind        string
	Credentials domain.Credentials
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if !domain.DataSourceKind(i.Kind).IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of sql, nosql, api"})
	}
	if i.Credentials.Port < 0 || i.Credentials.Port > 65535 {
		errs = append(errs, domain.FieldError{Field: "connectionCredentials.port", Message: "out of range"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SyncInput carries the connection settings used to materialize a data
// source remotely. Empty fields fall back to the stored credentials.
type SyncInput struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Engine   string
}

// merge overlays the non-empty fields of i onto stored.
func (i SyncInput) merge(stored domain.Credentials) domain.Credentials {
	out := stored
	if h := strings.TrimSpace(i.Host); h != "" {
		out.Host = h
	}
	if i.Port != 0 {
		out.Port = i.Port
	}
	if db := strings.TrimSpace(i.Database); db != "" {
		out.Database = db
	}
	if u := strings.TrimSpace(i.Username); u != "" {
		out.Username = u
	}
	if i.Password != "" {
		out.Password = i.Password
	}
	return out
}

func validateCredentials(c domain.Credentials) error {
	var errs []domain.FieldError

	if c.Host == "" {
		errs = append(errs, domain.FieldError{Field: "host", Message: "required"})
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, domain.FieldError{Field: "port", Message: "required"})
	}
	if c.Database == "" {
		errs = append(errs, domain.FieldError{Field: "database", Message: "required"})
	}
	if c.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
