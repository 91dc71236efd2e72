package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/adapter/metabase"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

const opSync = "query.sync"

// RetrySync materializes an unsynced query. A query that is already synced
// is returned as is.
func (s *Service) RetrySync(ctx context.Context, id uuid.UUID) (*RetryResult, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("queryId", "required")
	}

	q, err := s.queries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query.RetrySync: %w", err)
	}
	if cardID, ok := q.CardID(); ok {
		s.metrics.ObserveSync("retry", outcomeSkipped)
		return &RetryResult{CardID: cardID, AlreadySynced: true}, nil
	}

	ds, err := s.dataSources.GetByID(ctx, q.DataSourceID)
	if err != nil {
		return nil, fmt.Errorf("query.RetrySync: data source: %w", err)
	}

	cardID, err := s.materialize(ctx, q, ds)
	if err != nil {
		s.metrics.ObserveSync("retry", outcomeFailed)
		return nil, fmt.Errorf("query.RetrySync: %w", err)
	}

	if err := s.recordCard(ctx, q, cardID); err != nil {
		return nil, fmt.Errorf("query.RetrySync: %w", err)
	}
	s.metrics.ObserveSync("retry", outcomeSynced)

	stored, _ := q.CardID()
	return &RetryResult{CardID: stored, AlreadySynced: stored != cardID}, nil
}

// materialize creates the remote card for q and returns its id. Every
// failure is a DependencyError.
func (s *Service) materialize(ctx context.Context, q *domain.Query, ds *domain.DataSource) (int, error) {
	dbID, ok := ds.DatabaseID()
	if !ok {
		return 0, domain.NewDependencyError(opSync,
			fmt.Sprintf("data source %q has no remote database id", ds.Name), nil)
	}

	token, err := s.remote.Login(ctx)
	if err != nil {
		return 0, domain.NewDependencyError(opSync, "remote session", err)
	}
	s.log.DebugContext(ctx, "remote session acquired", slog.String("query_id", q.ID.String()))

	collections, err := s.remote.Collections(ctx, token)
	if err != nil {
		return 0, domain.NewDependencyError(opSync, "remote collections", err)
	}
	collectionID := metabase.FindCollection(collections, s.collectionName)
	if collectionID == nil {
		s.log.DebugContext(ctx, "target collection not found, using root",
			slog.String("collection", s.collectionName))
	}

	card, err := s.remote.CreateCard(ctx, token, metabase.NewCardRequest(q, dbID, collectionID))
	if err != nil {
		return 0, domain.NewDependencyError(opSync, "remote card creation", err)
	}
	s.log.DebugContext(ctx, "remote card created",
		slog.String("query_id", q.ID.String()),
		slog.Int("card_id", card.ID),
	)
	return card.ID, nil
}

// recordCard stores cardID on q. When another request recorded a card
// first, q is reloaded and keeps that card.
func (s *Service) recordCard(ctx context.Context, q *domain.Query, cardID int) error {
	now := s.now()
	updated, err := s.queries.MarkSynced(ctx, q.ID, cardID, now)
	if err != nil {
		return err
	}
	if !updated {
		current, err := s.queries.GetByID(ctx, q.ID)
		if err != nil {
			return err
		}
		s.log.WarnContext(ctx, "query was synced concurrently, remote card left orphaned",
			slog.String("query_id", q.ID.String()),
			slog.Int("card_id", cardID),
		)
		*q = *current
		return nil
	}

	q.MarkSynced(cardID, now)
	s.log.InfoContext(ctx, "query synced",
		slog.String("query_id", q.ID.String()),
		slog.Int("card_id", cardID),
	)
	return nil
}
