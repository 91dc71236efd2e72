package query

import "github.com/heartmarshall/chartboard-backend/internal/domain"

// CreateResult is the outcome of Create. SyncError is set when the query was
// stored but could not be materialized remotely.
type CreateResult struct {
	Query     *domain.Query
	SyncError string
}

// RetryResult is the outcome of RetrySync.
type RetryResult struct {
	CardID        int
	AlreadySynced bool
}
