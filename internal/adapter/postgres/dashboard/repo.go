// Package dashboard implements the Dashboard repository using PostgreSQL.
// Shares and comments are stored as JSONB arrays on the dashboard row and
// card references as an integer array.
package dashboard

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

var selectColumns = []string{
	"d.id", "d.name", "d.description", "d.owner_id", "u.username", "d.is_public",
	"d.shares", "d.comments", "d.cards", "d.created_at", "d.updated_at",
}

// Repo provides dashboard persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new dashboard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a dashboard. A duplicate (owner, name) pair yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, d *domain.Dashboard) (*domain.Dashboard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	shares, comments, err := encodeCollections(d)
	if err != nil {
		return nil, err
	}
	cards, err := cardIDs(d.Cards)
	if err != nil {
		return nil, err
	}

	_, err = q.Exec(ctx,
		`INSERT INTO dashboards (id, name, description, owner_id, is_public, shares, comments, cards, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		d.ID, d.Name, d.Description, d.OwnerID, d.IsPublic, shares, comments, cards, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "dashboard", d.ID)
	}

	return r.GetByID(ctx, d.ID)
}

// GetByID returns a dashboard with its owner's username.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error) {
	query, args, err := selectBuilder().Where(sq.Eq{"d.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get dashboard: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	d, err := scanDashboard(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "dashboard", id)
	}
	return d, nil
}

// Update persists every mutable field of d. Last write wins.
func (r *Repo) Update(ctx context.Context, d *domain.Dashboard) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	shares, comments, err := encodeCollections(d)
	if err != nil {
		return err
	}
	cards, err := cardIDs(d.Cards)
	if err != nil {
		return err
	}

	tag, err := q.Exec(ctx,
		`UPDATE dashboards
		    SET name = $2, description = $3, is_public = $4, shares = $5, comments = $6, cards = $7, updated_at = $8
		  WHERE id = $1`,
		d.ID, d.Name, d.Description, d.IsPublic, shares, comments, cards, d.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "dashboard", d.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dashboard %s: %w", d.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a dashboard row.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM dashboards WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "dashboard", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dashboard %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListAccessible returns dashboards owned by, shared with, or visible to
// userID because they are public. Most recently updated first.
func (r *Repo) ListAccessible(ctx context.Context, userID uuid.UUID) ([]domain.Dashboard, error) {
	shared, err := sharedWith(userID)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, sq.Or{
		sq.Eq{"d.owner_id": userID},
		sq.Eq{"d.is_public": true},
		shared,
	})
}

// ListByOwner returns every dashboard owned by ownerID.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Dashboard, error) {
	return r.list(ctx, sq.Eq{"d.owner_id": ownerID})
}

// ListSharedWith returns dashboards holding a share entry for userID.
func (r *Repo) ListSharedWith(ctx context.Context, userID uuid.UUID) ([]domain.Dashboard, error) {
	shared, err := sharedWith(userID)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, shared)
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer) ([]domain.Dashboard, error) {
	query, args, err := selectBuilder().Where(where).OrderBy("d.updated_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list dashboards: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query dashboards: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Dashboard, 0)
	for rows.Next() {
		d, err := scanDashboard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dashboard: %w", err)
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dashboards: %w", err)
	}
	return out, nil
}

func selectBuilder() sq.SelectBuilder {
	return postgres.Builder().
		Select(selectColumns...).
		From("dashboards d").
		Join("users u ON u.id = d.owner_id")
}

// sharedWith matches rows whose share list contains an entry for userID.
func sharedWith(userID uuid.UUID) (sq.Sqlizer, error) {
	filter, err := json.Marshal([]map[string]string{{"userId": userID.String()}})
	if err != nil {
		return nil, fmt.Errorf("encode share filter: %w", err)
	}
	return sq.Expr("d.shares @> ?::jsonb", string(filter)), nil
}

// ---------------------------------------------------------------------------
// JSONB records
// ---------------------------------------------------------------------------

type shareRecord struct {
	UserID     uuid.UUID `json:"userId"`
	Username   string    `json:"username"`
	Permission string    `json:"permission"`
	SharedAt   time.Time `json:"sharedAt"`
}

type commentRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func encodeCollections(d *domain.Dashboard) (shares, comments []byte, err error) {
	sr := make([]shareRecord, len(d.Shares))
	for i, s := range d.Shares {
		sr[i] = shareRecord{UserID: s.UserID, Username: s.Username, Permission: s.Tier.String(), SharedAt: s.GrantedAt}
	}
	cr := make([]commentRecord, len(d.Comments))
	for i, c := range d.Comments {
		cr[i] = commentRecord{
			ID: c.ID, UserID: c.AuthorID, Username: c.Username, Text: c.Text,
			CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
		}
	}

	if shares, err = json.Marshal(sr); err != nil {
		return nil, nil, fmt.Errorf("dashboard %s encode shares: %w", d.ID, err)
	}
	if comments, err = json.Marshal(cr); err != nil {
		return nil, nil, fmt.Errorf("dashboard %s encode comments: %w", d.ID, err)
	}
	return shares, comments, nil
}

func scanDashboard(row pgx.Row) (*domain.Dashboard, error) {
	var (
		d                  domain.Dashboard
		sharesRaw, commRaw []byte
		cards              []int32
	)
	err := row.Scan(
		&d.ID, &d.Name, &d.Description, &d.OwnerID, &d.OwnerName, &d.IsPublic,
		&sharesRaw, &commRaw, &cards, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	var sr []shareRecord
	if err := json.Unmarshal(sharesRaw, &sr); err != nil {
		return nil, fmt.Errorf("dashboard %s decode shares: %w", d.ID, err)
	}
	d.Shares = make([]domain.ShareEntry, 0, len(sr))
	for _, s := range sr {
		tier, ok := domain.ParseTier(s.Permission)
		if !ok {
			return nil, fmt.Errorf("dashboard %s: unknown share permission %q", d.ID, s.Permission)
		}
		d.Shares = append(d.Shares, domain.ShareEntry{UserID: s.UserID, Username: s.Username, Tier: tier, GrantedAt: s.SharedAt})
	}

	var cr []commentRecord
	if err := json.Unmarshal(commRaw, &cr); err != nil {
		return nil, fmt.Errorf("dashboard %s decode comments: %w", d.ID, err)
	}
	d.Comments = make([]domain.Comment, 0, len(cr))
	for _, c := range cr {
		d.Comments = append(d.Comments, domain.Comment{
			ID: c.ID, AuthorID: c.UserID, Username: c.Username, Text: c.Text,
			CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
		})
	}

	d.Cards = make([]int, len(cards))
	for i, c := range cards {
		d.Cards[i] = int(c)
	}

	return &d, nil
}

// cardIDs narrows d.Cards to the INTEGER[] column type, refusing values
// that would wrap.
func cardIDs(in []int) ([]int32, error) {
	out := make([]int32, len(in))
	for i, v := range in {
		if !domain.ValidCardID(v) {
			return nil, domain.NewValidationError("cards", fmt.Sprintf("card id %d out of range", v))
		}
		out[i] = int32(v)
	}
	return out, nil
}
