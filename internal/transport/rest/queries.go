package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
	"github.com/heartmarshall/chartboard-backend/internal/service/query"
	"github.com/heartmarshall/chartboard-backend/internal/transport/dataloader"
)

type queryService interface {
	Create(ctx context.Context, userID uuid.UUID, input query.CreateInput) (*query.CreateResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Query, error)
	ListByDashboard(ctx context.Context, dashboardID uuid.UUID) ([]domain.Query, error)
	AssignDashboard(ctx context.Context, queryID, dashboardID uuid.UUID) (*domain.Query, error)
	RetrySync(ctx context.Context, id uuid.UUID) (*query.RetryResult, error)
}

// QueryHandler serves /query/queries.
type QueryHandler struct {
	svc queryService
	log *slog.Logger
}

// NewQueryHandler creates a QueryHandler.
func NewQueryHandler(svc queryService, logger *slog.Logger) *QueryHandler {
	return &QueryHandler{svc: svc, log: logger.With("handler", "queries")}
}

type createQueryRequest struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	DataSource      string          `json:"dataSource"`
	ChartType       string          `json:"chartType"`
	Type            string          `json:"type"`
	QueryDefinition json.RawMessage `json:"queryDefinition"`
	UserID          string          `json:"userId"`
}

type assignQueryRequest struct {
	QueryID     string `json:"queryId"`
	DashboardID string `json:"dashboardId"`
}

type retryResponse struct {
	Message        string `json:"message"`
	MetabaseCardID int    `json:"metabaseCardId"`
}

// Create handles POST /query/queries. A remote sync failure does not fail
// the request: the stored query is returned with metabaseError set.
func (h *QueryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createQueryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	userID, err := actingUser(r, req.UserID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	dataSourceID, err := uuid.Parse(req.DataSource)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("dataSource", "invalid"))
		return
	}

	result, err := h.svc.Create(r.Context(), userID, query.CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		DataSourceID: dataSourceID,
		ChartKind:    req.ChartType,
		Type:         req.Type,
		Definition:   req.QueryDefinition,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := toQueryResponse(result.Query)
	resp.MetabaseError = result.SyncError
	writeJSON(w, http.StatusCreated, resp)
}

// Get handles GET /query/queries/{queryId}.
func (h *QueryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "queryId")
	if !ok {
		return
	}

	q, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.enrich(r.Context(), []domain.Query{*q})[0])
}

// ListByDashboard handles GET /query/queries/by-dashboard/{dashboardId}.
func (h *QueryHandler) ListByDashboard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "dashboardId")
	if !ok {
		return
	}

	qs, err := h.svc.ListByDashboard(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.enrich(r.Context(), qs))
}

// Assign handles POST /query/queries/assign.
func (h *QueryHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignQueryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var errs []domain.FieldError
	queryID, err := uuid.Parse(req.QueryID)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "queryId", Message: "invalid"})
	}
	dashboardID, err := uuid.Parse(req.DashboardID)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "dashboardId", Message: "invalid"})
	}
	if len(errs) > 0 {
		handleError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	q, err := h.svc.AssignDashboard(r.Context(), queryID, dashboardID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQueryResponse(q))
}

// RetrySync handles POST /query/queries/retry-sync/{queryId}.
func (h *QueryHandler) RetrySync(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "queryId")
	if !ok {
		return
	}

	result, err := h.svc.RetrySync(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	msg := "query synced successfully"
	if result.AlreadySynced {
		msg = "query is already synced"
	}
	writeJSON(w, http.StatusOK, retryResponse{Message: msg, MetabaseCardID: result.CardID})
}

func (h *QueryHandler) enrich(ctx context.Context, qs []domain.Query) []queryResponse {
	creators := make([]uuid.UUID, 0, len(qs))
	sources := make([]uuid.UUID, 0, len(qs))
	for _, q := range qs {
		creators = append(creators, q.CreatedBy)
		sources = append(sources, q.DataSourceID)
	}

	loaders := dataloader.FromContext(ctx)
	usernames := loaders.Usernames(ctx, creators)
	sourceNames := loaders.DataSourceNames(ctx, sources)

	out := make([]queryResponse, 0, len(qs))
	for i := range qs {
		resp := toQueryResponse(&qs[i])
		resp.CreatedByUsername = usernames[qs[i].CreatedBy]
		resp.DataSourceName = sourceNames[qs[i].DataSourceID]
		out = append(out, resp)
	}
	return out
}
