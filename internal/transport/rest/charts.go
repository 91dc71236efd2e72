package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/adapter/metabase"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
	"github.com/heartmarshall/chartboard-backend/internal/service/chart"
)

type chartService interface {
	GetChart(ctx context.Context, queryID uuid.UUID, chartType string) (*chart.View, error)
	GetRaw(ctx context.Context, queryID uuid.UUID) (*domain.Query, domain.ResultSet, error)
}

type metadataSource interface {
	Metadata(ctx context.Context, id uuid.UUID) (*domain.DataSource, metabase.Metadata, error)
}

// ChartHandler serves /charts.
type ChartHandler struct {
	charts   chartService
	metadata metadataSource
	log      *slog.Logger
}

// NewChartHandler creates a ChartHandler.
func NewChartHandler(charts chartService, metadata metadataSource, logger *slog.Logger) *ChartHandler {
	return &ChartHandler{charts: charts, metadata: metadata, log: logger.With("handler", "charts")}
}

type seriesResponse struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

type chartResponse struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Type        string           `json:"type"`
	Categories  []string         `json:"categories"`
	Series      []seriesResponse `json:"series"`
	Message     string           `json:"message,omitempty"`
}

type rawChartResponse struct {
	QueryID uuid.UUID        `json:"queryId"`
	Title   string           `json:"title"`
	Columns []string         `json:"columns"`
	Data    []map[string]any `json:"data"`
}

// Get handles GET /charts/{queryId}?chartType=.
func (h *ChartHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "queryId")
	if !ok {
		return
	}

	view, err := h.charts.GetChart(r.Context(), id, r.URL.Query().Get("chartType"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := chartResponse{
		Title:       view.Title,
		Description: view.Description,
		Type:        view.Type,
		Categories:  view.Chart.Categories,
		Series:      make([]seriesResponse, 0, len(view.Chart.Series)),
		Message:     view.Chart.Message,
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	for _, s := range view.Chart.Series {
		resp.Series = append(resp.Series, seriesResponse{Name: s.Name, Values: s.Values})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Raw handles GET /charts/raw/{queryId}.
//
// The older GET /charts/{queryId}/raw form is not served: it overlaps
// GET /charts/metadata/{dataSourceId} on ServeMux.
func (h *ChartHandler) Raw(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "queryId")
	if !ok {
		return
	}

	q, rs, err := h.charts.GetRaw(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := rawChartResponse{QueryID: q.ID, Title: q.Title, Columns: rs.Columns, Data: rs.Rows}
	if resp.Columns == nil {
		resp.Columns = []string{}
	}
	if resp.Data == nil {
		resp.Data = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Metadata handles GET /charts/metadata/{dataSourceId}: the remote tables
// and fields a chart can be built from.
func (h *ChartHandler) Metadata(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "dataSourceId")
	if !ok {
		return
	}

	ds, md, err := h.metadata.Metadata(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMetadataResponse(ds, md, true))
}
