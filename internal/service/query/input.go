package query

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

const maxTitleLen = 300

// CreateInput holds parameters for query creation.
type CreateInput struct {
	Title        string
	Description  string
	DataSourceID uuid.UUID
	ChartKind    string
	Type         string
	Definition   json.RawMessage
}

func (i *CreateInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.ChartKind = strings.TrimSpace(i.ChartKind)
	i.Type = strings.TrimSpace(i.Type)
	if i.Type == "" {
		i.Type = string(domain.QueryTypeBuilder)
	}
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.DataSourceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dataSource", Message: "required"})
	}
	if !domain.ChartKind(i.ChartKind).IsValid() {
		errs = append(errs, domain.FieldError{Field: "chartType", Message: "must be one of " + chartKindList()})
	}
	if !domain.QueryType(i.Type).IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of native, builder, ai"})
	}
	if len(i.Definition) > 0 && !json.Valid(i.Definition) {
		errs = append(errs, domain.FieldError{Field: "queryDefinition", Message: "must be valid JSON"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func chartKindList() string {
	kinds := domain.ChartKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
