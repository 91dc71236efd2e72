package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

// Create stores a new query and then tries to materialize it as a remote
// card. Once the query is stored the call succeeds: any later failure,
// remote or local, returns it unsynced with the reason in
// CreateResult.SyncError.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*CreateResult, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("userId", "required")
	}

	creator, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query.Create: creator: %w", err)
	}
	if creator.IsDeleted() {
		return nil, fmt.Errorf("query.Create: user %s: %w", userID, domain.ErrNotFound)
	}

	ds, err := s.dataSources.GetByID(ctx, input.DataSourceID)
	if err != nil {
		return nil, fmt.Errorf("query.Create: data source: %w", err)
	}

	now := s.now()
	q, err := s.queries.Create(ctx, &domain.Query{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		DataSourceID: ds.ID,
		Definition:   input.Definition,
		ChartKind:    domain.ChartKind(input.ChartKind),
		Type:         domain.QueryType(input.Type),
		Sync:         domain.Unsynced{},
		CreatedBy:    creator.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("query.Create: %w", err)
	}

	s.log.InfoContext(ctx, "query created",
		slog.String("query_id", q.ID.String()),
		slog.String("data_source_id", ds.ID.String()),
	)

	cardID, err := s.materialize(ctx, q, ds)
	if err != nil {
		s.metrics.ObserveSync("create", outcomeFailed)
		s.log.WarnContext(ctx, "query stored without remote card",
			slog.String("query_id", q.ID.String()),
			slog.String("error", err.Error()),
		)
		return &CreateResult{Query: q, SyncError: syncMessage(err)}, nil
	}

	if err := s.recordCard(ctx, q, cardID); err != nil {
		// The row exists, so the caller still gets it; RetrySync can link a new card later.
		s.metrics.ObserveSync("create", outcomeFailed)
		s.log.ErrorContext(ctx, "remote card created but not recorded",
			slog.String("query_id", q.ID.String()),
			slog.Int("card_id", cardID),
			slog.String("error", err.Error()),
		)
		return &CreateResult{Query: q, SyncError: fmt.Sprintf("remote card %d created but not recorded: %v", cardID, err)}, nil
	}
	s.metrics.ObserveSync("create", outcomeSynced)
	return &CreateResult{Query: q}, nil
}

// Get returns a query by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Query, error) {
	q, err := s.queries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query.Get: %w", err)
	}
	return q, nil
}

// ListByDashboard returns the queries assigned to a dashboard, newest first.
func (s *Service) ListByDashboard(ctx context.Context, dashboardID uuid.UUID) ([]domain.Query, error) {
	if dashboardID == uuid.Nil {
		return nil, domain.NewValidationError("dashboardId", "required")
	}
	list, err := s.queries.ListByDashboard(ctx, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("query.ListByDashboard: %w", err)
	}
	if list == nil {
		list = []domain.Query{}
	}
	return list, nil
}

// AssignDashboard places a query on a dashboard. Both must exist.
func (s *Service) AssignDashboard(ctx context.Context, queryID, dashboardID uuid.UUID) (*domain.Query, error) {
	var errs []domain.FieldError
	if queryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "queryId", Message: "required"})
	}
	if dashboardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dashboardId", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	q, err := s.queries.GetByID(ctx, queryID)
	if err != nil {
		return nil, fmt.Errorf("query.AssignDashboard: %w", err)
	}
	if _, err := s.dashboards.GetByID(ctx, dashboardID); err != nil {
		return nil, fmt.Errorf("query.AssignDashboard: dashboard: %w", err)
	}

	now := s.now()
	if err := s.queries.AssignDashboard(ctx, q.ID, dashboardID, now); err != nil {
		return nil, fmt.Errorf("query.AssignDashboard: %w", err)
	}
	q.DashboardID = &dashboardID
	q.UpdatedAt = now

	s.log.InfoContext(ctx, "query assigned to dashboard",
		slog.String("query_id", q.ID.String()),
		slog.String("dashboard_id", dashboardID.String()),
	)
	return q, nil
}

// syncMessage renders a sync failure for clients.
func syncMessage(err error) string {
	var dep *domain.DependencyError
	if errors.As(err, &dep) {
		if dep.Err != nil {
			return dep.Details + ": " + dep.Err.Error()
		}
		return dep.Details
	}
	return err.Error()
}
