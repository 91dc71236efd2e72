package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/adapter/metabase"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
	"github.com/heartmarshall/chartboard-backend/internal/service/datasource"
)

type dataSourceService interface {
	Create(ctx context.Context, input datasource.CreateInput) (*domain.DataSource, error)
	List(ctx context.Context) ([]domain.DataSource, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.DataSource, error)
	Sync(ctx context.Context, id uuid.UUID, input datasource.SyncInput) (*domain.DataSource, error)
	Metadata(ctx context.Context, id uuid.UUID) (*domain.DataSource, metabase.Metadata, error)
	Fields(ctx context.Context, id uuid.UUID, tableID int) (metabase.Table, error)
}

// DataSourceHandler serves /dataSources/datasources.
type DataSourceHandler struct {
	svc dataSourceService
	log *slog.Logger
}

// NewDataSourceHandler creates a DataSourceHandler.
func NewDataSourceHandler(svc dataSourceService, logger *slog.Logger) *DataSourceHandler {
	return &DataSourceHandler{svc: svc, log: logger.With("handler", "datasources")}
}

type credentialsRequest struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

type createDataSourceRequest struct {
	Name                  string             `json:"name"`
	Type                  string             `json:"type"`
	ConnectionCredentials credentialsRequest `json:"connectionCredentials"`
}

type syncDataSourceRequest struct {
	credentialsRequest
	Engine string `json:"engine"`
}

type fieldResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	Type         string `json:"type"`
	SemanticType string `json:"semanticType,omitempty"`
}

type tableResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	Description string          `json:"description,omitempty"`
	Fields      []fieldResponse `json:"fields,omitempty"`
}

type metadataResponse struct {
	DataSourceID uuid.UUID       `json:"dataSourceId"`
	DatabaseID   int             `json:"databaseId"`
	DatabaseName string          `json:"databaseName"`
	Tables       []tableResponse `json:"tables"`
}

func toTableResponse(t metabase.Table, withFields bool) tableResponse {
	resp := tableResponse{
		ID:          t.ID,
		Name:        t.Name,
		DisplayName: t.DisplayName,
		Description: t.Description,
	}
	if withFields {
		resp.Fields = make([]fieldResponse, 0, len(t.Fields))
		for _, f := range t.Fields {
			resp.Fields = append(resp.Fields, fieldResponse{
				ID:           f.ID,
				Name:         f.Name,
				DisplayName:  f.DisplayName,
				Type:         f.BaseType,
				SemanticType: f.SemanticType,
			})
		}
	}
	return resp
}

func toMetadataResponse(ds *domain.DataSource, md metabase.Metadata, withFields bool) metadataResponse {
	resp := metadataResponse{
		DataSourceID: ds.ID,
		DatabaseID:   md.ID,
		DatabaseName: md.Name,
		Tables:       make([]tableResponse, 0, len(md.Tables)),
	}
	for _, t := range md.Tables {
		resp.Tables = append(resp.Tables, toTableResponse(t, withFields))
	}
	return resp
}

// Create handles POST /dataSources/datasources.
func (h *DataSourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDataSourceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ds, err := h.svc.Create(r.Context(), datasource.CreateInput{
		Name:        req.Name,
		Kind:        req.Type,
		Credentials: domain.Credentials(req.ConnectionCredentials),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDataSourceResponse(ds))
}

// List handles GET /dataSources/datasources.
func (h *DataSourceHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]dataSourceResponse, 0, len(list))
	for i := range list {
		out = append(out, toDataSourceResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /dataSources/datasources/{id}.
func (h *DataSourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	ds, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDataSourceResponse(ds))
}

// Sync handles POST /dataSources/datasources/{id}/sync.
func (h *DataSourceHandler) Sync(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req syncDataSourceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ds, err := h.svc.Sync(r.Context(), id, datasource.SyncInput{
		Host:     req.Host,
		Port:     req.Port,
		Database: req.Database,
		Username: req.Username,
		Password: req.Password,
		Engine:   req.Engine,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDataSourceResponse(ds))
}

// Tables handles GET /dataSources/datasources/{id}/tables.
func (h *DataSourceHandler) Tables(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	ds, md, err := h.svc.Metadata(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMetadataResponse(ds, md, false))
}

// Fields handles GET /dataSources/datasources/{id}/tables/{tableId}/fields.
func (h *DataSourceHandler) Fields(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	tableID, ok := pathInt(w, r, "tableId")
	if !ok {
		return
	}

	table, err := h.svc.Fields(r.Context(), id, tableID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTableResponse(table, true))
}
