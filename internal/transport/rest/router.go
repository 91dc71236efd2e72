package rest

import (
	"net/http"

	"github.com/heartmarshall/chartboard-backend/internal/auth"
	"github.com/heartmarshall/chartboard-backend/internal/transport/middleware"
)

// Handlers groups the handlers served by NewRouter.
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Users       *UserHandler
	Roles       *RoleHandler
	Audit       *AuditHandler
	Dashboards  *DashboardHandler
	Queries     *QueryHandler
	DataSources *DataSourceHandler
	Charts      *ChartHandler
	Metrics     http.Handler
}

// NewRouter registers every route. Permission gates are applied per route;
// the principal itself is resolved by the Auth middleware in front of the
// router.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	gate := func(pattern string, fn http.HandlerFunc, mw middleware.Middleware) {
		mux.Handle(pattern, mw(fn))
	}
	authed := middleware.Middleware(middleware.RequireAuth)
	admin := middleware.RequireAdmin()
	perm := middleware.RequirePermission

	// Operations.
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /metabase/ping", h.Health.MetabasePing)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	// Auth.
	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/refresh-token", h.Auth.Refresh)
	mux.HandleFunc("GET /auth/user/{username}", h.Auth.UserByUsername)

	// Users.
	gate("GET /users", h.Users.List, admin)
	gate("GET /users/{id}", h.Users.Get, admin)
	gate("PUT /users/{id}", h.Users.Update, authed)
	gate("PATCH /users/{id}/deactivate", h.Users.Deactivate, perm(auth.PermUserDeactivate))
	gate("PATCH /users/{id}/activate", h.Users.Activate, perm(auth.PermUserActivate))
	gate("DELETE /users/{id}", h.Users.Delete, perm(auth.PermUserDelete))
	gate("PATCH /users/{id}/assign-role", h.Users.AssignRole, perm(auth.PermRoleModify))

	// Roles.
	gate("GET /roles", h.Roles.List, authed)
	gate("GET /roles/{id}", h.Roles.Get, authed)
	gate("POST /roles", h.Roles.Create, perm(auth.PermRoleCreate))
	gate("PUT /roles/{id}", h.Roles.Update, perm(auth.PermRoleModify))
	gate("POST /roles/{id}/permissions/add", h.Roles.AddPermission, perm(auth.PermRoleModify))
	gate("POST /roles/{id}/permissions/remove", h.Roles.RemovePermission, perm(auth.PermRoleModify))
	gate("DELETE /roles/{id}", h.Roles.Delete, perm(auth.PermRoleDelete))

	// Audit logs.
	gate("GET /audit-logs", h.Audit.List, admin)
	gate("GET /audit-logs/{id}", h.Audit.Get, admin)
	gate("GET /audit-logs/user/{userId}", h.Audit.ByTargetUser, admin)
	gate("GET /audit-logs/action/{action}", h.Audit.ByAction, admin)
	gate("GET /audit-logs/admin/{adminId}", h.Audit.ByPerformer, admin)

	// Dashboards.
	mux.HandleFunc("POST /dashboards/create", h.Dashboards.Create)
	mux.HandleFunc("POST /dashboards", h.Dashboards.List)
	mux.HandleFunc("POST /dashboards/{$}", h.Dashboards.List)
	mux.HandleFunc("POST /dashboards/shared", h.Dashboards.ListShared)
	// Was POST /dashboards/user/{userId}; see ListByOwner.
	mux.HandleFunc("GET /dashboards/user/{ownerId}", h.Dashboards.ListByOwner)
	mux.HandleFunc("POST /dashboards/add-card", h.Dashboards.AddCard)
	mux.HandleFunc("POST /dashboards/remove-card", h.Dashboards.RemoveCard)
	mux.HandleFunc("POST /dashboards/{id}", h.Dashboards.Get)
	mux.HandleFunc("PUT /dashboards/{id}", h.Dashboards.Update)
	mux.HandleFunc("DELETE /dashboards/{id}", h.Dashboards.Delete)
	mux.HandleFunc("PUT /dashboards/{id}/public", h.Dashboards.SetPublic)
	mux.HandleFunc("POST /dashboards/{id}/share", h.Dashboards.Share)
	mux.HandleFunc("DELETE /dashboards/{id}/share/{targetUserId}", h.Dashboards.RevokeShare)
	mux.HandleFunc("POST /dashboards/{id}/comments", h.Dashboards.AddComment)
	mux.HandleFunc("POST /dashboards/{id}/comments/list", h.Dashboards.ListComments)
	mux.HandleFunc("DELETE /dashboards/{id}/comments/{commentId}", h.Dashboards.DeleteComment)

	// Queries.
	mux.HandleFunc("POST /query/queries", h.Queries.Create)
	mux.HandleFunc("POST /query/queries/assign", h.Queries.Assign)
	mux.HandleFunc("POST /query/queries/retry-sync/{queryId}", h.Queries.RetrySync)
	mux.HandleFunc("GET /query/queries/by-dashboard/{dashboardId}", h.Queries.ListByDashboard)
	mux.HandleFunc("GET /query/queries/{queryId}", h.Queries.Get)

	// Data sources.
	mux.HandleFunc("POST /dataSources/datasources", h.DataSources.Create)
	mux.HandleFunc("GET /dataSources/datasources", h.DataSources.List)
	mux.HandleFunc("GET /dataSources/datasources/{id}", h.DataSources.Get)
	mux.HandleFunc("POST /dataSources/datasources/{id}/sync", h.DataSources.Sync)
	mux.HandleFunc("GET /dataSources/datasources/{id}/tables", h.DataSources.Tables)
	mux.HandleFunc("GET /dataSources/datasources/{id}/tables/{tableId}/fields", h.DataSources.Fields)

	// Charts.
	mux.HandleFunc("GET /charts/metadata/{dataSourceId}", h.Charts.Metadata)
	// Was GET /charts/{queryId}/raw; see Raw.
	mux.HandleFunc("GET /charts/raw/{queryId}", h.Charts.Raw)
	mux.HandleFunc("GET /charts/{queryId}", h.Charts.Get)

	return mux
}
