package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SyncState tells whether a query has a remote, executable counterpart.
// It is either Unsynced or Synced; a nil SyncState is treated as Unsynced.
type SyncState interface {
	isSyncState()
}

// Unsynced marks a query that exists only locally.
type Unsynced struct{}

// Synced marks a query materialized as remote card CardID.
type Synced struct {
	CardID int
}

func (Unsynced) isSyncState() {}
func (Synced) isSyncState()   {}

// Query is a stored chart definition that can be mirrored into the remote
// BI service as a card.
type Query struct {
	ID           uuid.UUID
	Title        string
	Description  string
	DataSourceID uuid.UUID
	Definition   json.RawMessage
	ChartKind    ChartKind
	Type         QueryType
	Sync         SyncState
	DashboardID  *uuid.UUID
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CardID returns the remote card id when the query is synced.
func (q *Query) CardID() (int, bool) {
	s, ok := q.Sync.(Synced)
	return s.CardID, ok
}

// IsSynced reports whether the query has a remote card.
func (q *Query) IsSynced() bool {
	_, ok := q.CardID()
	return ok
}

// MarkSynced moves the query into the Synced state.
func (q *Query) MarkSynced(cardID int, at time.Time) {
	q.Sync = Synced{CardID: cardID}
	q.UpdatedAt = at
}
