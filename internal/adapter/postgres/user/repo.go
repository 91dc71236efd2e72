// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/chartboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

const userColumns = `id, username, email, password_hash, role_id, is_active, deleted_at, created_at, updated_at`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key, including soft-deleted users.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return u, nil
}

// GetByIDs returns the users with the given ids in no particular order.
// Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	query, args, err := postgres.Builder().
		Select(userColumns).
		From("users").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build users by ids: %w", err)
	}

	return r.list(ctx, query, args...)
}

// List returns every user that is not soft-deleted, oldest first.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	query, args, err := postgres.Builder().
		Select(userColumns).
		From("users").
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	return r.list(ctx, query, args...)
}

// Count returns the number of stored users, deleted ones included.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// signupLockKey identifies the advisory lock serializing registrations.
const signupLockKey int64 = 0x63686172745f7573 // "chart_us"

// LockSignups takes a transaction-scoped advisory lock so concurrent
// registrations see each other's rows. It must run inside RunInTx.
func (r *Repo) LockSignups(ctx context.Context) error {
	if !postgres.InTx(ctx) {
		return fmt.Errorf("lock signups: no transaction in context")
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, signupLockKey); err != nil {
		return fmt.Errorf("lock signups: %w", err)
	}
	return nil
}

// CountByRole returns how many users reference roleID.
func (r *Repo) CountByRole(ctx context.Context, roleID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM users WHERE role_id = $1`, roleID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users by role %s: %w", roleID, err)
	}
	return n, nil
}

// Create inserts a new user and returns the persisted row.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanUser(q.QueryRow(ctx,
		`INSERT INTO users (id, username, email, password_hash, role_id, is_active, deleted_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+userColumns,
		u.ID, u.Username, u.Email, u.PasswordHash, u.RoleID, u.IsActive, u.DeletedAt, u.CreatedAt, u.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// Update overwrites every mutable column of u and returns the stored row.
func (r *Repo) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanUser(q.QueryRow(ctx,
		`UPDATE users
		    SET username = $2, email = $3, password_hash = $4, role_id = $5,
		        is_active = $6, deleted_at = $7, updated_at = $8
		  WHERE id = $1
		 RETURNING `+userColumns,
		u.ID, u.Username, u.Email, u.PasswordHash, u.RoleID, u.IsActive, u.DeletedAt, u.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return updated, nil
}

// AssignRoleByUsername sets the role of the named user.
func (r *Repo) AssignRoleByUsername(ctx context.Context, username string, roleID uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `UPDATE users SET role_id = $2, updated_at = $3 WHERE username = $1`, username, roleID, at)
	if err != nil {
		return postgres.MapError(err, "user", username)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) list(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.RoleID,
		&u.IsActive, &u.DeletedAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
