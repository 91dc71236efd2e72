package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
	"github.com/heartmarshall/chartboard-backend/internal/service/dashboard"
)

type dashboardService interface {
	Create(ctx context.Context, userID uuid.UUID, input dashboard.CreateInput) (*domain.Dashboard, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Dashboard, error)
	ListByOwner(ctx context.Context, userID, ownerID uuid.UUID) ([]domain.Dashboard, error)
	ListShared(ctx context.Context, userID uuid.UUID) ([]domain.Dashboard, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Dashboard, error)
	Update(ctx context.Context, userID, id uuid.UUID, input dashboard.UpdateInput) (*domain.Dashboard, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	SetPublic(ctx context.Context, userID, id uuid.UUID, public bool) (*domain.Dashboard, error)
	AddCard(ctx context.Context, userID, id uuid.UUID, cardID int) (*domain.Dashboard, error)
	RemoveCard(ctx context.Context, userID, id uuid.UUID, cardID int) (*domain.Dashboard, error)
	Share(ctx context.Context, userID, id uuid.UUID, input dashboard.ShareInput) (*domain.Dashboard, error)
	RevokeShare(ctx context.Context, userID, id, targetID uuid.UUID) (*domain.Dashboard, error)
	AddComment(ctx context.Context, userID, id uuid.UUID, text string) (*domain.Comment, error)
	ListComments(ctx context.Context, userID, id uuid.UUID) ([]domain.Comment, error)
	DeleteComment(ctx context.Context, userID, id, commentID uuid.UUID) error
}

// DashboardHandler serves /dashboards. Every route acts on behalf of the
// user resolved by actingUser.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboards")}
}

type actorRequest struct {
	UserID string `json:"userId"`
}

type createDashboardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
}

type updateDashboardRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	UserID      string  `json:"userId"`
}

type shareRequest struct {
	TargetUsername string `json:"targetUsername"`
	Permission     string `json:"permission"`
	UserID         string `json:"userId"`
}

type publicRequest struct {
	IsPublic *bool  `json:"isPublic"`
	UserID   string `json:"userId"`
}

type cardRequest struct {
	DashboardID string `json:"dashboardId"`
	CardID      *int   `json:"cardId"`
	UserID      string `json:"userId"`
}

type commentRequest struct {
	Text   string `json:"text"`
	UserID string `json:"userId"`
}

// Create handles POST /dashboards/create.
func (h *DashboardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDashboardRequest
	userID, ok := h.decode(w, r, &req, func() string { return req.UserID })
	if !ok {
		return
	}

	d, err := h.svc.Create(r.Context(), userID, dashboard.CreateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDashboardResponse(d, true))
}

// List handles POST /dashboards/: every dashboard the user owns, is shared
// or can see publicly.
func (h *DashboardHandler) List(w http.ResponseWriter, r *http.Request) {
	var req actorRequest
	userID, ok := h.decode(w, r, &req, func() string { return req.UserID })
	if !ok {
		return
	}

	ds, err := h.svc.List(r.Context(), userID)
	h.respondList(w, r, ds, err)
}

// ListShared handles POST /dashboards/shared.
func (h *DashboardHandler) ListShared(w http.ResponseWriter, r *http.Request) {
	var req actorRequest
	userID, ok := h.decode(w, r, &req, func() string { return req.UserID })
	if !ok {
		return
	}

	ds, err := h.svc.ListShared(r.Context(), userID)
	h.respondList(w, r, ds, err)
}

// ListByOwner handles GET /dashboards/user/{ownerId}?userId=.
//
// Clients of the older POST /dashboards/user/{userId} form must switch to
// this path: that shape overlaps POST /dashboards/{id}/share and friends,
// which ServeMux refuses to register.
func (h *DashboardHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathUUID(w, r, "ownerId")
	if !ok {
		return
	}
	userID, err := actingUser(r, r.URL.Query().Get("userId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ds, err := h.svc.ListByOwner(r.Context(), userID, ownerID)
	h.respondList(w, r, ds, err)
}

// Get handles POST /dashboards/{id}.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	var req actorRequest
	h.withDashboard(w, r, &req, func() string { return req.UserID },
		func(userID, id uuid.UUID) (*domain.Dashboard, error) {
			return h.svc.Get(r.Context(), userID, id)
		})
}

// Update handles PUT /dashboards/{id}.
func (h *DashboardHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateDashboardRequest
	h.withDashboard(w, r, &req, func() string { return req.UserID },
		func(userID, id uuid.UUID) (*domain.Dashboard, error) {
			return h.svc.Update(r.Context(), userID, id, dashboard.UpdateInput{
				Name:        req.Name,
				Description: req.Description,
			})
		})
}

// Delete handles DELETE /dashboards/{id}.
func (h *DashboardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req actorRequest
	userID, ok := h.decode(w, r, &req, func() string { return req.UserID })
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "dashboard deleted successfully"})
}

// SetPublic handles PUT /dashboards/{id}/public.
func (h *DashboardHandler) SetPublic(w http.ResponseWriter, r *http.Request) {
	var req publicRequest
	h.withDashboard(w, r, &req, func() string { return req.UserID },
		func(userID, id uuid.UUID) (*domain.Dashboard, error) {
			if req.IsPublic == nil {
				return nil, domain.NewValidationError("isPublic", "required")
			}
			return h.svc.SetPublic(r.Context(), userID, id, *req.IsPublic)
		})
}

// Share handles POST /dashboards/{id}/share.
func (h *DashboardHandler) Share(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	h.withDashboard(w, r, &req, func() string { return req.UserID },
		func(userID, id uuid.UUID) (*domain.Dashboard, error) {
			return h.svc.Share(r.Context(), userID, id, dashboard.ShareInput{
				TargetUsername: req.TargetUsername,
				Permission:     req.Permission,
			})
		})
}

// RevokeShare handles DELETE /dashboards/{id}/share/{targetUserId}.
func (h *DashboardHandler) RevokeShare(w http.ResponseWriter, r *http.Request) {
	targetID, ok := pathUUID(w, r, "targetUserId")
	if !ok {
		return
	}
	var req actorRequest
	h.withDashboard(w, r, &req, func() string { return req.UserID },
		func(userID, id uuid.UUID) (*domain.Dashboard, error) {
			return h.svc.RevokeShare(r.Context(), userID, id, targetID)
		})
}

// AddCard handles POST /dashboards/add-card.
func (h *DashboardHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	h.card(w, r, h.svc.AddCard)
}

// RemoveCard handles POST /dashboards/remove-card.
func (h *DashboardHandler) RemoveCard(w http.ResponseWriter, r *http.Request) {
	h.card(w, r, h.svc.RemoveCard)
}

func (h *DashboardHandler) card(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, userID, id uuid.UUID, cardID int) (*domain.Dashboard, error)) {
	var req cardRequest
	userID, ok := h.decode(w, r, &req, func() string { return req.UserID })
	if !ok {
		return
	}

	var errs []domain.FieldError
	id, err := uuid.Parse(req.DashboardID)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "dashboardId", Message: "invalid"})
	}
	if req.CardID == nil {
		errs = append(errs, domain.FieldError{Field: "cardId", Message: "required"})
	}
	if len(errs) > 0 {
		handleError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	d, err := fn(r.Context(), userID, id, *req.CardID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardResponse(d, false))
}

// AddComment handles POST /dashboards/{id}/comments.
func (h *DashboardHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req commentRequest
	userID, ok := h.decode(w, r, &req, func() string { return req.UserID })
	if !ok {
		return
	}

	c, err := h.svc.AddComment(r.Context(), userID, id, req.Text)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentResponse(*c))
}

// ListComments handles POST /dashboards/{id}/comments/list.
func (h *DashboardHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req actorRequest
	userID, ok := h.decode(w, r, &req, func() string { return req.UserID })
	if !ok {
		return
	}

	cs, err := h.svc.ListComments(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentResponses(cs))
}

// DeleteComment handles DELETE /dashboards/{id}/comments/{commentId}.
func (h *DashboardHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	commentID, ok := pathUUID(w, r, "commentId")
	if !ok {
		return
	}
	var req actorRequest
	userID, ok := h.decode(w, r, &req, func() string { return req.UserID })
	if !ok {
		return
	}

	if err := h.svc.DeleteComment(r.Context(), userID, id, commentID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "comment deleted successfully"})
}

// decode reads the body into req and resolves the acting user from the
// userId it carries.
func (h *DashboardHandler) decode(w http.ResponseWriter, r *http.Request, req any, bodyUserID func() string) (uuid.UUID, bool) {
	if !decodeJSON(w, r, req) {
		return uuid.Nil, false
	}
	userID, err := actingUser(r, bodyUserID())
	if err != nil {
		handleError(w, r, h.log, err)
		return uuid.Nil, false
	}
	return userID, true
}

// withDashboard runs fn for the dashboard in the path and renders the
// result with its comments.
func (h *DashboardHandler) withDashboard(
	w http.ResponseWriter,
	r *http.Request,
	req any,
	bodyUserID func() string,
	fn func(userID, id uuid.UUID) (*domain.Dashboard, error),
) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := h.decode(w, r, req, bodyUserID)
	if !ok {
		return
	}

	d, err := fn(userID, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardResponse(d, true))
}

func (h *DashboardHandler) respondList(w http.ResponseWriter, r *http.Request, ds []domain.Dashboard, err error) {
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardList(ds))
}
