// Package datasource manages external databases and their materialization
// as remote databases in the BI service.
package datasource

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/adapter/metabase"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

type dataSourceRepo interface {
	Create(ctx context.Context, ds *domain.DataSource) (*domain.DataSource, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DataSource, error)
	List(ctx context.Context) ([]domain.DataSource, error)
	SaveSync(ctx context.Context, id uuid.UUID, creds domain.Credentials, remoteDBID int, at time.Time) (*domain.DataSource, error)
}

type remoteClient interface {
	Login(ctx context.Context) (string, error)
	CreateDatabase(ctx context.Context, token string, req metabase.DatabaseRequest) (metabase.Database, error)
	UpdateDatabase(ctx context.Context, token string, id int, req metabase.DatabaseRequest) (metabase.Database, error)
	DatabaseMetadata(ctx context.Context, token string, id int) (metabase.Metadata, error)
	Table(ctx context.Context, token string, id int) (metabase.Table, error)
}

type syncRecorder interface {
	ObserveSync(operation, outcome string)
}

// Service implements data source operations.
type Service struct {
	log           *slog.Logger
	sources       dataSourceRepo
	remote        remoteClient
	metrics       syncRecorder
	defaultEngine string
}

// NewService creates a new data source service. defaultEngine is used when a
// sync request names no engine.
func NewService(logger *slog.Logger, sources dataSourceRepo, remote remoteClient, metrics syncRecorder, defaultEngine string) *Service {
	return &Service{
		log:           logger.With("service", "datasource"),
		sources:       sources,
		remote:        remote,
		metrics:       metrics,
		defaultEngine: defaultEngine,
	}
}
