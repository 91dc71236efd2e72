package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
	"github.com/heartmarshall/chartboard-backend/internal/transport/dataloader"
)

type auditService interface {
	List(ctx context.Context) ([]domain.AuditLog, error)
	Get(ctx context.Context, id string) (*domain.AuditLog, error)
	ByTargetUser(ctx context.Context, userID uuid.UUID) ([]domain.AuditLog, error)
	ByAction(ctx context.Context, action string) ([]domain.AuditLog, error)
	ByPerformer(ctx context.Context, adminID uuid.UUID) ([]domain.AuditLog, error)
}

// AuditHandler serves /audit-logs. Entries are enriched with the usernames
// of their target and performer.
type AuditHandler struct {
	svc auditService
	log *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditService, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit")}
}

// List handles GET /audit-logs.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	h.respondList(w, r, entries, err)
}

// Get handles GET /audit-logs/{id}.
func (h *AuditHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.enrich(r.Context(), []domain.AuditLog{*entry})[0])
}

// ByTargetUser handles GET /audit-logs/user/{userId}.
func (h *AuditHandler) ByTargetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}
	entries, err := h.svc.ByTargetUser(r.Context(), id)
	h.respondList(w, r, entries, err)
}

// ByAction handles GET /audit-logs/action/{action}.
func (h *AuditHandler) ByAction(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ByAction(r.Context(), r.PathValue("action"))
	h.respondList(w, r, entries, err)
}

// ByPerformer handles GET /audit-logs/admin/{adminId}.
func (h *AuditHandler) ByPerformer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "adminId")
	if !ok {
		return
	}
	entries, err := h.svc.ByPerformer(r.Context(), id)
	h.respondList(w, r, entries, err)
}

func (h *AuditHandler) respondList(w http.ResponseWriter, r *http.Request, entries []domain.AuditLog, err error) {
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.enrich(r.Context(), entries))
}

func (h *AuditHandler) enrich(ctx context.Context, entries []domain.AuditLog) []auditLogResponse {
	ids := make([]uuid.UUID, 0, 2*len(entries))
	for _, e := range entries {
		ids = append(ids, e.PerformedBy)
		if e.TargetUserID != nil {
			ids = append(ids, *e.TargetUserID)
		}
	}
	names := dataloader.FromContext(ctx).Usernames(ctx, ids)

	out := make([]auditLogResponse, 0, len(entries))
	for _, e := range entries {
		resp := auditLogResponse{
			ID:                  e.ID,
			Action:              e.Action.String(),
			TargetUserID:        e.TargetUserID,
			TargetRoleID:        e.TargetRoleID,
			PerformedBy:         e.PerformedBy,
			PerformedByUsername: names[e.PerformedBy],
			Details:             e.Details,
			CreatedAt:           e.CreatedAt,
		}
		if e.TargetUserID != nil {
			resp.TargetUsername = names[*e.TargetUserID]
		}
		out = append(out, resp)
	}
	return out
}
