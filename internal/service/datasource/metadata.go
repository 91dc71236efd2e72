package datasource

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/adapter/metabase"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

// Metadata returns the remote tables and fields of a synced data source.
// Display names fall back to the raw names.
func (s *Service) Metadata(ctx context.Context, id uuid.UUID) (*domain.DataSource, metabase.Metadata, error) {
	ds, dbID, err := s.synced(ctx, id)
	if err != nil {
		return nil, metabase.Metadata{}, fmt.Errorf("datasource.Metadata: %w", err)
	}

	token, err := s.remote.Login(ctx)
	if err != nil {
		return nil, metabase.Metadata{}, domain.NewDependencyError("datasource.Metadata", "remote session", err)
	}
	md, err := s.remote.DatabaseMetadata(ctx, token, dbID)
	if err != nil {
		return nil, metabase.Metadata{}, domain.NewDependencyError("datasource.Metadata", "failed to fetch tables", err)
	}

	if md.ID == 0 {
		md.ID = dbID
	}
	for i := range md.Tables {
		fillTable(&md.Tables[i])
	}
	return ds, md, nil
}

// Fields returns one remote table of a synced data source with its fields.
func (s *Service) Fields(ctx context.Context, id uuid.UUID, tableID int) (metabase.Table, error) {
	if tableID <= 0 {
		return metabase.Table{}, domain.NewValidationError("tableId", "required")
	}
	if _, _, err := s.synced(ctx, id); err != nil {
		return metabase.Table{}, fmt.Errorf("datasource.Fields: %w", err)
	}

	token, err := s.remote.Login(ctx)
	if err != nil {
		return metabase.Table{}, domain.NewDependencyError("datasource.Fields", "remote session", err)
	}
	t, err := s.remote.Table(ctx, token, tableID)
	if err != nil {
		return metabase.Table{}, domain.NewDependencyError("datasource.Fields", "failed to fetch table fields", err)
	}

	fillTable(&t)
	return t, nil
}

// synced loads a data source and its remote database id. An unsynced data
// source is a validation failure.
func (s *Service) synced(ctx context.Context, id uuid.UUID) (*domain.DataSource, int, error) {
	ds, err := s.sources.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	dbID, ok := ds.DatabaseID()
	if !ok {
		return nil, 0, domain.NewValidationError("dataSource", "has not been synced to the remote service yet")
	}
	return ds, dbID, nil
}

func fillTable(t *metabase.Table) {
	if t.DisplayName == "" {
		t.DisplayName = t.Name
	}
	for i := range t.Fields {
		if t.Fields[i].DisplayName == "" {
			t.Fields[i].DisplayName = t.Fields[i].Name
		}
	}
}
