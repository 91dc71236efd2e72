// Package dataloader provides per-request loaders that batch the lookups
// REST handlers make while enriching responses (usernames, data source
// names) into single repository calls.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type dataSourceRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.DataSource, error)
}

// Repos holds the repositories the loaders read from.
type Repos struct {
	Users       userRepo
	DataSources dataSourceRepo
}

// Loaders holds the per-request loaders. Missing keys resolve to nil.
type Loaders struct {
	UserByID       *dataloader.Loader[uuid.UUID, *domain.User]
	DataSourceByID *dataloader.Loader[uuid.UUID, *domain.DataSource]
}

// NewLoaders creates a new set of loaders. Must be called per request:
// loaders cache results for their lifetime.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UserByID:       newLoader(newUsersBatchFn(repos.Users)),
		DataSourceByID: newLoader(newDataSourcesBatchFn(repos.DataSources)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// Usernames resolves ids to usernames in one batch. Unknown ids and
// lookup failures are left out of the map.
func (l *Loaders) Usernames(ctx context.Context, ids []uuid.UUID) map[uuid.UUID]string {
	out := make(map[uuid.UUID]string, len(ids))
	keys := distinct(ids)
	if len(keys) == 0 {
		return out
	}

	users, errs := l.UserByID.LoadMany(ctx, keys)()
	for i, u := range users {
		if u == nil || (errs != nil && errs[i] != nil) {
			continue
		}
		out[keys[i]] = u.Username
	}
	return out
}

// DataSourceNames resolves ids to data source names in one batch.
func (l *Loaders) DataSourceNames(ctx context.Context, ids []uuid.UUID) map[uuid.UUID]string {
	out := make(map[uuid.UUID]string, len(ids))
	keys := distinct(ids)
	if len(keys) == 0 {
		return out
	}

	sources, errs := l.DataSourceByID.LoadMany(ctx, keys)()
	for i, ds := range sources {
		if ds == nil || (errs != nil && errs[i] != nil) {
			continue
		}
		out[keys[i]] = ds.Name
	}
	return out
}

func distinct(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
