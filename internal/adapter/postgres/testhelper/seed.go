package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedRole creates a role with the given permissions and a unique name.
func SeedRole(t *testing.T, pool *pgxpool.Pool, permissions ...string) domain.Role {
	t.Helper()

	ts := now()
	role := domain.Role{
		ID:          uuid.New(),
		Name:        "role-" + uniqueSuffix(),
		Description: "seeded role",
		Permissions: append([]string{}, permissions...),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO roles (id, name, description, permissions, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		role.ID, role.Name, role.Description, role.Permissions, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRole: %v", err)
	}

	return role
}

// SeedUser creates an active user without a role.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + suffix,
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "$2a$04$seededhashseededhashseededhashseededhashseededhashse",
		IsActive:     true,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, password_hash, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedUserWithRole creates an active user holding roleID.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, roleID uuid.UUID) domain.User {
	t.Helper()

	user := SeedUser(t, pool)
	if _, err := pool.Exec(context.Background(), `UPDATE users SET role_id = $2 WHERE id = $1`, user.ID, roleID); err != nil {
		t.Fatalf("testhelper: SeedUserWithRole: %v", err)
	}
	user.RoleID = &roleID
	return user
}

// SeedDashboard creates an empty private dashboard owned by owner.
func SeedDashboard(t *testing.T, pool *pgxpool.Pool, owner domain.User) domain.Dashboard {
	t.Helper()

	ts := now()
	d := domain.Dashboard{
		ID:          uuid.New(),
		Name:        "dashboard-" + uniqueSuffix(),
		Description: "seeded dashboard",
		OwnerID:     owner.ID,
		OwnerName:   owner.Username,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO dashboards (id, name, description, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		d.ID, d.Name, d.Description, d.OwnerID, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDashboard: %v", err)
	}

	return d
}

// SeedDataSource creates a SQL data source. When remoteDBID is non-nil the
// data source is already materialized remotely.
func SeedDataSource(t *testing.T, pool *pgxpool.Pool, remoteDBID *int) domain.DataSource {
	t.Helper()

	ts := now()
	ds := domain.DataSource{
		ID:   uuid.New(),
		Name: "source-" + uniqueSuffix(),
		Kind: domain.DataSourceKindSQL,
		Credentials: domain.Credentials{
			Host: "db.internal", Port: 3306, Username: "reader", Password: "secret", Database: "sales",
		},
		RemoteDBID: remoteDBID,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO data_sources (id, name, kind, credentials, remote_db_id, created_at, updated_at)
		 VALUES ($1, $2, $3, jsonb_build_object('host', $4::text, 'port', $5::int, 'username', $6::text,
		         'password', $7::text, 'database', $8::text), $9, $10, $11)`,
		ds.ID, ds.Name, string(ds.Kind),
		ds.Credentials.Host, ds.Credentials.Port, ds.Credentials.Username, ds.Credentials.Password, ds.Credentials.Database,
		ds.RemoteDBID, ds.CreatedAt, ds.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDataSource: %v", err)
	}

	return ds
}

// SeedQuery creates an unsynced bar-chart query on ds created by creator.
func SeedQuery(t *testing.T, pool *pgxpool.Pool, ds domain.DataSource, creator domain.User) domain.Query {
	t.Helper()

	ts := now()
	q := domain.Query{
		ID:           uuid.New(),
		Title:        "query-" + uniqueSuffix(),
		DataSourceID: ds.ID,
		Definition:   []byte(`{"source-table":1}`),
		ChartKind:    domain.ChartKindBar,
		Type:         domain.QueryTypeBuilder,
		Sync:         domain.Unsynced{},
		CreatedBy:    creator.ID,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO queries (id, title, data_source_id, definition, chart_kind, query_type, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		q.ID, q.Title, q.DataSourceID, string(q.Definition), string(q.ChartKind), string(q.Type), q.CreatedBy, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuery: %v", err)
	}

	return q
}
