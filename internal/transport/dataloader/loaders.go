package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}
		return mapResults(keys, byID)
	}
}

func newDataSourcesBatchFn(repo dataSourceRepo) dataloader.BatchFunc[uuid.UUID, *domain.DataSource] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.DataSource] {
		sources, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.DataSource](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.DataSource, len(sources))
		for i := range sources {
			byID[sources[i].ID] = &sources[i]
		}
		return mapResults(keys, byID)
	}
}

// errorResults returns n results all carrying err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps results back to key order. Missing keys get the zero value.
func mapResults[V any](keys []uuid.UUID, byID map[uuid.UUID]V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[V]{Data: byID[key]}
	}
	return results
}
