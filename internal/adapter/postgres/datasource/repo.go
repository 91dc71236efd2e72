// Package datasource implements the DataSource repository using PostgreSQL.
package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/chartboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

const dataSourceColumns = `id, name, kind, credentials, remote_db_id, created_at, updated_at`

// Repo provides data source persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new data source repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type credentialsRecord struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// Create inserts a data source.
func (r *Repo) Create(ctx context.Context, ds *domain.DataSource) (*domain.DataSource, error) {
	creds, err := json.Marshal(credentialsRecord(ds.Credentials))
	if err != nil {
		return nil, fmt.Errorf("data_source %s encode credentials: %w", ds.ID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	created, err := scanDataSource(q.QueryRow(ctx,
		`INSERT INTO data_sources (id, name, kind, credentials, remote_db_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+dataSourceColumns,
		ds.ID, ds.Name, string(ds.Kind), creds, ds.RemoteDBID, ds.CreatedAt, ds.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "data_source", ds.ID)
	}
	return created, nil
}

// GetByID returns a data source by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DataSource, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ds, err := scanDataSource(q.QueryRow(ctx, `SELECT `+dataSourceColumns+` FROM data_sources WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "data_source", id)
	}
	return ds, nil
}

// GetByIDs returns the data sources with the given ids. Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.DataSource, error) {
	if len(ids) == 0 {
		return []domain.DataSource{}, nil
	}

	query, args, err := postgres.Builder().
		Select(dataSourceColumns).
		From("data_sources").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build data sources by ids: %w", err)
	}
	return r.list(ctx, query, args...)
}

// List returns all data sources ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.DataSource, error) {
	return r.list(ctx, `SELECT `+dataSourceColumns+` FROM data_sources ORDER BY name ASC, created_at ASC`)
}

// SaveSync stores the credentials used for the remote database together
// with its id.
func (r *Repo) SaveSync(ctx context.Context, id uuid.UUID, creds domain.Credentials, remoteDBID int, at time.Time) (*domain.DataSource, error) {
	raw, err := json.Marshal(credentialsRecord(creds))
	if err != nil {
		return nil, fmt.Errorf("data_source %s encode credentials: %w", id, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	ds, err := scanDataSource(q.QueryRow(ctx,
		`UPDATE data_sources SET credentials = $2, remote_db_id = $3, updated_at = $4
		  WHERE id = $1
		 RETURNING `+dataSourceColumns,
		id, raw, remoteDBID, at,
	))
	if err != nil {
		return nil, postgres.MapError(err, "data_source", id)
	}
	return ds, nil
}

func (r *Repo) list(ctx context.Context, query string, args ...any) ([]domain.DataSource, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query data sources: %w", err)
	}
	defer rows.Close()

	out := make([]domain.DataSource, 0)
	for rows.Next() {
		ds, err := scanDataSource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan data source: %w", err)
		}
		out = append(out, *ds)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate data sources: %w", err)
	}
	return out, nil
}

func scanDataSource(row pgx.Row) (*domain.DataSource, error) {
	var (
		ds       domain.DataSource
		kind     string
		rawCreds []byte
		remoteID *int32
	)
	if err := row.Scan(&ds.ID, &ds.Name, &kind, &rawCreds, &remoteID, &ds.CreatedAt, &ds.UpdatedAt); err != nil {
		return nil, err
	}

	ds.Kind = domain.DataSourceKind(kind)
	if remoteID != nil {
		id := int(*remoteID)
		ds.RemoteDBID = &id
	}

	var creds credentialsRecord
	if len(rawCreds) > 0 {
		if err := json.Unmarshal(rawCreds, &creds); err != nil {
			return nil, fmt.Errorf("data_source %s decode credentials: %w", ds.ID, err)
		}
	}
	ds.Credentials = domain.Credentials(creds)
	return &ds, nil
}
