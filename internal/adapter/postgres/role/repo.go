// Package role implements the Role repository using PostgreSQL.
package role

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/chartboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

const roleColumns = `id, name, description, permissions, created_at, updated_at`

// Repo provides role persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new role repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a role by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Role, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	role, err := scanRole(q.QueryRow(ctx, `SELECT `+roleColumns+` FROM roles WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "role", id)
	}
	return role, nil
}

// GetByName returns a role by its unique name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	role, err := scanRole(q.QueryRow(ctx, `SELECT `+roleColumns+` FROM roles WHERE name = $1`, name))
	if err != nil {
		return nil, postgres.MapError(err, "role", name)
	}
	return role, nil
}

// List returns all roles ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Role, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+roleColumns+` FROM roles ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("query roles: %w", err)
	}
	defer rows.Close()

	roles := make([]domain.Role, 0)
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, *role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roles: %w", err)
	}
	return roles, nil
}

// Create inserts a role and returns the persisted row.
func (r *Repo) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanRole(q.QueryRow(ctx,
		`INSERT INTO roles (id, name, description, permissions, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+roleColumns,
		role.ID, role.Name, role.Description, permissionsOrEmpty(role.Permissions), role.CreatedAt, role.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "role", role.ID)
	}
	return created, nil
}

// Update overwrites name, description and permissions.
func (r *Repo) Update(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanRole(q.QueryRow(ctx,
		`UPDATE roles SET name = $2, description = $3, permissions = $4, updated_at = $5
		  WHERE id = $1
		 RETURNING `+roleColumns,
		role.ID, role.Name, role.Description, permissionsOrEmpty(role.Permissions), role.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "role", role.ID)
	}
	return updated, nil
}

// Delete removes a role. A role still referenced by users yields ErrConflict.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "role", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("role %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func permissionsOrEmpty(p []string) []string {
	if p == nil {
		return []string{}
	}
	return p
}

func scanRole(row pgx.Row) (*domain.Role, error) {
	var role domain.Role
	if err := row.Scan(&role.ID, &role.Name, &role.Description, &role.Permissions, &role.CreatedAt, &role.UpdatedAt); err != nil {
		return nil, err
	}
	if role.Permissions == nil {
		role.Permissions = []string{}
	}
	return &role, nil
}
