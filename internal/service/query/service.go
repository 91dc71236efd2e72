// Package query keeps stored queries and mirrors them into the remote BI
// service as cards. Local persistence always comes first; remote
// materialization is best-effort and can be retried.
package query

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/adapter/metabase"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

type queryRepo interface {
	Create(ctx context.Context, q *domain.Query) (*domain.Query, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Query, error)
	ListByDashboard(ctx context.Context, dashboardID uuid.UUID) ([]domain.Query, error)
	MarkSynced(ctx context.Context, id uuid.UUID, cardID int, at time.Time) (bool, error)
	AssignDashboard(ctx context.Context, id, dashboardID uuid.UUID, at time.Time) error
}

type dataSourceRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DataSource, error)
}

type dashboardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type remoteClient interface {
	Login(ctx context.Context) (string, error)
	Collections(ctx context.Context, token string) ([]metabase.Collection, error)
	CreateCard(ctx context.Context, token string, req metabase.CardRequest) (metabase.Card, error)
}

type syncRecorder interface {
	ObserveSync(operation, outcome string)
}

// Sync outcomes reported to the recorder.
const (
	outcomeSynced  = "synced"
	outcomeSkipped = "skipped"
	outcomeFailed  = "failed"
)

// Service implements query operations and the sync orchestrator.
type Service struct {
	log            *slog.Logger
	queries        queryRepo
	dataSources    dataSourceRepo
	dashboards     dashboardRepo
	users          userRepo
	remote         remoteClient
	metrics        syncRecorder
	collectionName string
	now            func() time.Time
}

// NewService creates a new query service. collectionName is the remote
// collection new cards are filed under.
func NewService(
	logger *slog.Logger,
	queries queryRepo,
	dataSources dataSourceRepo,
	dashboards dashboardRepo,
	users userRepo,
	remote remoteClient,
	metrics syncRecorder,
	collectionName string,
) *Service {
	return &Service{
		log:            logger.With("service", "query"),
		queries:        queries,
		dataSources:    dataSources,
		dashboards:     dashboards,
		users:          users,
		remote:         remote,
		metrics:        metrics,
		collectionName: collectionName,
		now:            time.Now,
	}
}
