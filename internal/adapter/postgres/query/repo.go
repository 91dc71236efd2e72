// Package query implements the Query repository using PostgreSQL.
package query

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/chartboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

const queryColumns = `id, title, description, data_source_id, definition, chart_kind, query_type,
	metabase_card_id, dashboard_id, created_by, created_at, updated_at`

// Repo provides query persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new query repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a query. The remote card id is always stored as given by
// q.Sync, which is NULL for an unsynced query.
func (r *Repo) Create(ctx context.Context, q *domain.Query) (*domain.Query, error) {
	db := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanQuery(db.QueryRow(ctx,
		`INSERT INTO queries (id, title, description, data_source_id, definition, chart_kind, query_type,
		                      metabase_card_id, dashboard_id, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+queryColumns,
		q.ID, q.Title, q.Description, q.DataSourceID, definitionOrEmpty(q.Definition),
		string(q.ChartKind), string(q.Type), cardIDParam(q), q.DashboardID, q.CreatedBy, q.CreatedAt, q.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "query", q.ID)
	}
	return created, nil
}

// GetByID returns a query by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Query, error) {
	db := postgres.QuerierFromCtx(ctx, r.pool)

	q, err := scanQuery(db.QueryRow(ctx, `SELECT `+queryColumns+` FROM queries WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "query", id)
	}
	return q, nil
}

// ListByDashboard returns the queries assigned to dashboardID, newest first.
func (r *Repo) ListByDashboard(ctx context.Context, dashboardID uuid.UUID) ([]domain.Query, error) {
	db := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := db.Query(ctx,
		`SELECT `+queryColumns+` FROM queries WHERE dashboard_id = $1 ORDER BY created_at DESC`, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("query queries by dashboard %s: %w", dashboardID, err)
	}
	defer rows.Close()

	out := make([]domain.Query, 0)
	for rows.Next() {
		q, err := scanQuery(rows)
		if err != nil {
			return nil, fmt.Errorf("scan query: %w", err)
		}
		out = append(out, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate queries: %w", err)
	}
	return out, nil
}

// MarkSynced records the remote card id for an unsynced query. It reports
// false when the query was already synced, leaving the stored card id intact.
func (r *Repo) MarkSynced(ctx context.Context, id uuid.UUID, cardID int, at time.Time) (bool, error) {
	db := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := db.Exec(ctx,
		`UPDATE queries SET metabase_card_id = $2, updated_at = $3
		  WHERE id = $1 AND metabase_card_id IS NULL`,
		id, cardID, at,
	)
	if err != nil {
		return false, postgres.MapError(err, "query", id)
	}
	return tag.RowsAffected() == 1, nil
}

// AssignDashboard links a query to a dashboard.
func (r *Repo) AssignDashboard(ctx context.Context, id, dashboardID uuid.UUID, at time.Time) error {
	db := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := db.Exec(ctx,
		`UPDATE queries SET dashboard_id = $2, updated_at = $3 WHERE id = $1`, id, dashboardID, at)
	if err != nil {
		return postgres.MapError(err, "query", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("query %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func definitionOrEmpty(def []byte) []byte {
	if len(def) == 0 {
		return []byte(`{}`)
	}
	return def
}

func cardIDParam(q *domain.Query) *int {
	if id, ok := q.CardID(); ok {
		return &id
	}
	return nil
}

func scanQuery(row pgx.Row) (*domain.Query, error) {
	var (
		q         domain.Query
		def       []byte
		chartKind string
		queryType string
		cardID    *int32
	)
	err := row.Scan(
		&q.ID, &q.Title, &q.Description, &q.DataSourceID, &def, &chartKind, &queryType,
		&cardID, &q.DashboardID, &q.CreatedBy, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	q.Definition = def
	q.ChartKind = domain.ChartKind(chartKind)
	q.Type = domain.QueryType(queryType)
	if cardID != nil {
		q.Sync = domain.Synced{CardID: int(*cardID)}
	} else {
		q.Sync = domain.Unsynced{}
	}
	return &q, nil
}
