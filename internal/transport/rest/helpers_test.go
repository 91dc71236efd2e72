package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
	"github.com/heartmarshall/chartboard-backend/internal/transport/dataloader"
	"github.com/heartmarshall/chartboard-backend/pkg/ctxutil"
)

// call describes one request against a single handler.
type call struct {
	method    string
	target    string
	body      any
	path      map[string]string
	principal *domain.Principal
	users     []domain.User
	sources   []domain.DataSource
}

func (c call) do(t *testing.T, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if c.body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(c.body))
	}
	method := c.method
	if method == "" {
		method = http.MethodPost
	}
	target := c.target
	if target == "" {
		target = "/"
	}

	req := httptest.NewRequest(method, target, &buf)
	for k, v := range c.path {
		req.SetPathValue(k, v)
	}

	ctx := dataloader.WithLoaders(req.Context(), dataloader.NewLoaders(&dataloader.Repos{
		Users:       userDirectory(c.users),
		DataSources: sourceDirectory(c.sources),
	}))
	if c.principal != nil {
		ctx = ctxutil.WithPrincipal(ctx, *c.principal)
	}

	rec := httptest.NewRecorder()
	h(rec, req.WithContext(ctx))
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), rec.Body.String())
	return v
}

type userDirectory []domain.User

func (d userDirectory) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.User, error) {
	var out []domain.User
	for _, u := range d {
		if slices.Contains(ids, u.ID) {
			out = append(out, u)
		}
	}
	return out, nil
}

type sourceDirectory []domain.DataSource

func (d sourceDirectory) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.DataSource, error) {
	var out []domain.DataSource
	for _, ds := range d {
		if slices.Contains(ids, ds.ID) {
			out = append(out, ds)
		}
	}
	return out, nil
}
