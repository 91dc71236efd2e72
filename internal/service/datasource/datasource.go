package datasource

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/adapter/metabase"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

const opSync = "datasource.sync"

// Create stores a new, not yet materialized data source.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.DataSource, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	ds, err := s.sources.Create(ctx, &domain.DataSource{
		ID:          uuid.New(),
		Name:        input.Name,
		Kind:        domain.DataSourceKind(input.Kind),
		Credentials: input.Credentials,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("datasource.Create: %w", err)
	}

	s.log.InfoContext(ctx, "data source created",
		slog.String("data_source_id", ds.ID.String()),
		slog.String("kind", ds.Kind.String()),
	)
	return ds, nil
}

// List returns every data source.
func (s *Service) List(ctx context.Context) ([]domain.DataSource, error) {
	list, err := s.sources.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("datasource.List: %w", err)
	}
	if list == nil {
		list = []domain.DataSource{}
	}
	return list, nil
}

// Get returns a data source by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.DataSource, error) {
	ds, err := s.sources.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("datasource.Get: %w", err)
	}
	return ds, nil
}

// Sync materializes the data source as a remote database. A data source
// that already has a remote database is updated in place; otherwise a new
// remote database is created. The merged credentials and the remote id are
// stored only after the remote call succeeds.
func (s *Service) Sync(ctx context.Context, id uuid.UUID, input SyncInput) (*domain.DataSource, error) {
	ds, err := s.sources.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("datasource.Sync: %w", err)
	}

	creds := input.merge(ds.Credentials)
	if err := validateCredentials(creds); err != nil {
		return nil, err
	}

	engine := strings.TrimSpace(input.Engine)
	if engine == "" {
		engine = s.defaultEngine
	}
	req := metabase.DatabaseRequest{
		Engine: engine,
		Name:   ds.Name,
		Details: metabase.DatabaseDetails{
			Host:     creds.Host,
			Port:     creds.Port,
			DBName:   creds.Database,
			User:     creds.Username,
			Password: creds.Password,
		},
	}

	remoteID, err := s.materialize(ctx, ds, req)
	if err != nil {
		s.metrics.ObserveSync("datasource", "failed")
		return nil, fmt.Errorf("datasource.Sync: %w", err)
	}

	saved, err := s.sources.SaveSync(ctx, ds.ID, creds, remoteID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("datasource.Sync: %w", err)
	}
	s.metrics.ObserveSync("datasource", "synced")

	s.log.InfoContext(ctx, "data source synced",
		slog.String("data_source_id", ds.ID.String()),
		slog.Int("remote_db_id", remoteID),
		slog.String("engine", engine),
	)
	return saved, nil
}

func (s *Service) materialize(ctx context.Context, ds *domain.DataSource, req metabase.DatabaseRequest) (int, error) {
	token, err := s.remote.Login(ctx)
	if err != nil {
		return 0, domain.NewDependencyError(opSync, "remote session", err)
	}

	if dbID, ok := ds.DatabaseID(); ok {
		db, err := s.remote.UpdateDatabase(ctx, token, dbID, req)
		if err != nil {
			return 0, domain.NewDependencyError(opSync, "remote database update", err)
		}
		return db.ID, nil
	}

	db, err := s.remote.CreateDatabase(ctx, token, req)
	if err != nil {
		return 0, domain.NewDependencyError(opSync, "remote database creation", err)
	}
	if db.ID == 0 {
		return 0, domain.NewDependencyError(opSync, "remote database created without an id", nil)
	}
	return db.ID, nil
}
