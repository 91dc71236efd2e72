//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	rolerepo "github.com/heartmarshall/chartboard-backend/internal/adapter/postgres/role"
	"github.com/heartmarshall/chartboard-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/chartboard-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/chartboard-backend/internal/app"
	authpkg "github.com/heartmarshall/chartboard-backend/internal/auth"
	"github.com/heartmarshall/chartboard-backend/internal/config"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	BI     *fakeBI
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// fakeBI is an in-memory stand-in for the remote BI service.
// ---------------------------------------------------------------------------

type fakeBI struct {
	mu        sync.Mutex
	nextDBID  int
	nextCard  int
	rows      string
	failCards bool
}

func newFakeBI() *fakeBI {
	return &fakeBI{
		nextDBID: 10,
		nextCard: 40,
		rows:     `[{"region":"North","sales":10},{"region":"South","sales":25}]`,
	}
}

func (f *fakeBI) setFailCards(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failCards = fail
}

func (f *fakeBI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/session":
		fmt.Fprint(w, `{"id":"session-token"}`)
	case r.Method == http.MethodGet && r.URL.Path == "/api/collection":
		fmt.Fprint(w, `[{"id":"root","name":"Our analytics"},{"id":7,"name":"Nos analyses"}]`)
	case r.Method == http.MethodPost && r.URL.Path == "/api/database":
		f.nextDBID++
		fmt.Fprintf(w, `{"id":%d,"name":"db","engine":"postgres"}`, f.nextDBID)
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/database/"):
		id := strings.TrimPrefix(r.URL.Path, "/api/database/")
		fmt.Fprintf(w, `{"id":%s,"name":"db","engine":"postgres"}`, id)
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/metadata"):
		fmt.Fprint(w, `{"id":11,"name":"shop","tables":[{"id":3,"name":"orders","display_name":"Orders",
			"fields":[{"id":5,"name":"total","display_name":"Total","base_type":"type/Decimal"}]}]}`)
	case r.Method == http.MethodPost && r.URL.Path == "/api/card":
		if f.failCards {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"message":"card service unavailable"}`)
			return
		}
		f.nextCard++
		fmt.Fprintf(w, `{"id":%d,"name":"card","display":"bar"}`, f.nextCard)
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/query/json"):
		fmt.Fprint(w, f.rows)
	default:
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"not found"}`)
	}
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper) and a fake BI service.
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	bi := newFakeBI()
	biSrv := httptest.NewServer(bi)
	t.Cleanup(biSrv.Close)

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret-at-least-32-chars-long!!",
			JWTIssuer:        "test-issuer",
			TokenTTL:         time.Hour,
			PasswordHashCost: 4,
			MinPasswordLen:   6,
		},
		Metabase: config.MetabaseConfig{
			URL:            biSrv.URL,
			Email:          "svc@example.com",
			Password:       "pw",
			CollectionName: "Nos analyses",
			DefaultEngine:  "postgres",
			Timeout:        5 * time.Second,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
	}

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	handler, stop := app.NewHandler(cfg, logger, pool, prometheus.NewRegistry())
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		BI:     bi,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// doJSON sends a request, asserts the status and decodes the body into T.
func doJSON[T any](t *testing.T, ts *testServer, method, path, token string, body any, wantStatus int) T {
	t.Helper()

	resp := restRequest(t, ts, method, path, token, body)
	defer resp.Body.Close()

	var out T
	raw := new(bytes.Buffer)
	_, _ = raw.ReadFrom(resp.Body)
	require.Equal(t, wantStatus, resp.StatusCode, raw.String())
	if raw.Len() > 0 {
		require.NoError(t, json.Unmarshal(raw.Bytes(), &out), raw.String())
	}
	return out
}

// ---------------------------------------------------------------------------
// Account helpers.
// ---------------------------------------------------------------------------

type account struct {
	ID       uuid.UUID
	Username string
	Token    string
}

// registerUser signs up a fresh account through the API.
func registerUser(t *testing.T, ts *testServer) account {
	t.Helper()

	name := "e2e" + uuid.NewString()[:8]
	body := doJSON[map[string]any](t, ts, http.MethodPost, "/auth/register", "", map[string]string{
		"username": name,
		"email":    name + "@example.com",
		"password": "securepassword123",
	}, http.StatusCreated)

	user := body["user"].(map[string]any)
	return account{
		ID:       uuid.MustParse(user["id"].(string)),
		Username: name,
		Token:    body["token"].(string),
	}
}

// registerAdmin signs up an account and grants it the admin role directly.
func registerAdmin(t *testing.T, ts *testServer) account {
	t.Helper()

	acc := registerUser(t, ts)
	ctx := context.Background()

	role, err := rolerepo.New(ts.Pool).GetByName(ctx, authpkg.AdminRoleName)
	require.NoError(t, err)
	require.NoError(t, userrepo.New(ts.Pool).AssignRoleByUsername(ctx, acc.Username, role.ID, time.Now().UTC()))
	return acc
}
