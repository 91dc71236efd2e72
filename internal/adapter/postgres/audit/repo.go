// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/chartboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

var auditColumns = []string{"id", "action", "target_user_id", "target_role_id", "performed_by", "details", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Log appends an audit record.
func (r *Repo) Log(ctx context.Context, rec domain.AuditLog) error {
	details := rec.Details
	if details == nil {
		details = map[string]any{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("audit_log marshal details: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert("audit_logs").
		Columns(auditColumns...).
		Values(rec.ID, string(rec.Action), rec.TargetUserID, rec.TargetRoleID, rec.PerformedBy, raw, rec.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert audit_log: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "audit_log", rec.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a single audit record.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.AuditLog, error) {
	query, args, err := postgres.Builder().
		Select(auditColumns...).
		From("audit_logs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get audit_log: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rec, err := scanAuditLog(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "audit_log", id)
	}
	return rec, nil
}

// List returns audit records matching f, newest first.
func (r *Repo) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditLog, error) {
	b := postgres.Builder().
		Select(auditColumns...).
		From("audit_logs").
		OrderBy("created_at DESC", "id DESC")

	if f.Action != nil {
		b = b.Where(sq.Eq{"action": string(*f.Action)})
	}
	if f.TargetUserID != nil {
		b = b.Where(sq.Eq{"target_user_id": *f.TargetUserID})
	}
	if f.PerformedBy != nil {
		b = b.Where(sq.Eq{"performed_by": *f.PerformedBy})
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit_logs: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit_logs: %w", err)
	}
	defer rows.Close()

	out := make([]domain.AuditLog, 0)
	for rows.Next() {
		rec, err := scanAuditLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit_logs: %w", err)
	}
	return out, nil
}

func scanAuditLog(row pgx.Row) (*domain.AuditLog, error) {
	var (
		rec    domain.AuditLog
		action string
		raw    []byte
	)
	if err := row.Scan(&rec.ID, &action, &rec.TargetUserID, &rec.TargetRoleID, &rec.PerformedBy, &raw, &rec.CreatedAt); err != nil {
		return nil, err
	}
	rec.Action = domain.AuditAction(action)

	rec.Details = map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &rec.Details); err != nil {
			return nil, fmt.Errorf("audit_log %s unmarshal details: %w", rec.ID, err)
		}
	}
	return &rec, nil
}
