// Package chart executes synced queries remotely and shapes their rows for
// chart widgets.
package chart

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

type queryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Query, error)
}

type remoteClient interface {
	Login(ctx context.Context) (string, error)
	RunCard(ctx context.Context, token string, cardID int) (domain.ResultSet, error)
}

// View is a projected chart with the query it was built from.
type View struct {
	Title       string
	Description string
	Type        string
	Chart       domain.Chart
}

// Service implements chart operations.
type Service struct {
	log     *slog.Logger
	queries queryRepo
	remote  remoteClient
}

// NewService creates a new chart service instance.
func NewService(logger *slog.Logger, queries queryRepo, remote remoteClient) *Service {
	return &Service{
		log:     logger.With("service", "chart"),
		queries: queries,
		remote:  remote,
	}
}

// GetChart runs the query's card and projects the rows. chartType overrides
// the query's chart kind in the response; it does not change the data.
func (s *Service) GetChart(ctx context.Context, queryID uuid.UUID, chartType string) (*View, error) {
	chartType = strings.TrimSpace(chartType)
	if chartType != "" && !domain.ChartKind(chartType).IsValid() {
		return nil, domain.NewValidationError("chartType", "unknown chart type")
	}

	q, rs, err := s.run(ctx, queryID, "chart.GetChart")
	if err != nil {
		return nil, err
	}

	view := &View{
		Title:       q.Title,
		Description: q.Description,
		Type:        resolveType(chartType, q.ChartKind),
		Chart:       Project(rs),
	}
	if len(rs.Rows) == 0 {
		view.Chart.Message = "Query executed but returned no data"
	}

	s.log.DebugContext(ctx, "chart projected",
		slog.String("query_id", q.ID.String()),
		slog.Int("categories", len(view.Chart.Categories)),
		slog.Int("series", len(view.Chart.Series)),
	)
	return view, nil
}

// GetRaw runs the query's card and returns the rows untransformed.
func (s *Service) GetRaw(ctx context.Context, queryID uuid.UUID) (*domain.Query, domain.ResultSet, error) {
	return s.run(ctx, queryID, "chart.GetRaw")
}

func (s *Service) run(ctx context.Context, queryID uuid.UUID, op string) (*domain.Query, domain.ResultSet, error) {
	q, err := s.queries.GetByID(ctx, queryID)
	if err != nil {
		return nil, domain.ResultSet{}, fmt.Errorf("%s: %w", op, err)
	}
	cardID, ok := q.CardID()
	if !ok {
		return nil, domain.ResultSet{}, domain.NewValidationError("queryId", "query has not been synced to the remote service yet")
	}

	token, err := s.remote.Login(ctx)
	if err != nil {
		return nil, domain.ResultSet{}, domain.NewDependencyError(op, "remote session", err)
	}
	rs, err := s.remote.RunCard(ctx, token, cardID)
	if err != nil {
		return nil, domain.ResultSet{}, domain.NewDependencyError(op, "failed to get chart data", err)
	}
	return q, rs, nil
}

func resolveType(requested string, kind domain.ChartKind) string {
	if requested != "" {
		return requested
	}
	if kind != "" {
		return kind.String()
	}
	return domain.ChartKindBar.String()
}
