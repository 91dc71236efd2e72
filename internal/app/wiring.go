package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/chartboard-backend/internal/adapter/metabase"
	"github.com/heartmarshall/chartboard-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/chartboard-backend/internal/adapter/postgres/audit"
	dashboardrepo "github.com/heartmarshall/chartboard-backend/internal/adapter/postgres/dashboard"
	datasourcerepo "github.com/heartmarshall/chartboard-backend/internal/adapter/postgres/datasource"
	queryrepo "github.com/heartmarshall/chartboard-backend/internal/adapter/postgres/query"
	rolerepo "github.com/heartmarshall/chartboard-backend/internal/adapter/postgres/role"
	userrepo "github.com/heartmarshall/chartboard-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/chartboard-backend/internal/auth"
	"github.com/heartmarshall/chartboard-backend/internal/config"
	"github.com/heartmarshall/chartboard-backend/internal/obs"
	auditsvc "github.com/heartmarshall/chartboard-backend/internal/service/audit"
	authsvc "github.com/heartmarshall/chartboard-backend/internal/service/auth"
	"github.com/heartmarshall/chartboard-backend/internal/service/chart"
	"github.com/heartmarshall/chartboard-backend/internal/service/dashboard"
	"github.com/heartmarshall/chartboard-backend/internal/service/datasource"
	"github.com/heartmarshall/chartboard-backend/internal/service/query"
	"github.com/heartmarshall/chartboard-backend/internal/service/role"
	usersvc "github.com/heartmarshall/chartboard-backend/internal/service/user"
	"github.com/heartmarshall/chartboard-backend/internal/transport/dataloader"
	"github.com/heartmarshall/chartboard-backend/internal/transport/middleware"
	"github.com/heartmarshall/chartboard-backend/internal/transport/rest"
)

// rateLimitCleanup is how often idle per-client limiters are evicted.
const rateLimitCleanup = 5 * time.Minute

type repos struct {
	users       *userrepo.Repo
	roles       *rolerepo.Repo
	audit       *auditrepo.Repo
	dashboards  *dashboardrepo.Repo
	queries     *queryrepo.Repo
	dataSources *datasourcerepo.Repo
}

type services struct {
	auth        *authsvc.Service
	users       *usersvc.Service
	roles       *role.Service
	audit       *auditsvc.Service
	dashboards  *dashboard.Service
	queries     *query.Service
	dataSources *datasource.Service
	charts      *chart.Service
}

// deps is the fully wired object graph behind the HTTP surface.
type deps struct {
	pool     *pgxpool.Pool
	remote   *metabase.Client
	metrics  *obs.Metrics
	repos    repos
	services services
}

func newDeps(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, reg *prometheus.Registry) *deps {
	txm := postgres.NewTxManager(pool)
	metrics := obs.New(reg)
	remote := metabase.New(cfg.Metabase, logger)

	r := repos{
		users:       userrepo.New(pool),
		roles:       rolerepo.New(pool),
		audit:       auditrepo.New(pool),
		dashboards:  dashboardrepo.New(pool),
		queries:     queryrepo.New(pool),
		dataSources: datasourcerepo.New(pool),
	}

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	s := services{
		auth:        authsvc.NewService(logger, r.users, r.roles, txm, tokens, hasher, cfg.Auth),
		users:       usersvc.NewService(logger, r.users, r.roles, r.audit, txm, hasher, cfg.Auth.MinPasswordLen),
		roles:       role.NewService(logger, r.roles, r.users, r.audit, txm),
		audit:       auditsvc.NewService(logger, r.audit),
		dashboards:  dashboard.NewService(logger, r.dashboards, r.users),
		queries:     query.NewService(logger, r.queries, r.dataSources, r.dashboards, r.users, remote, metrics, cfg.Metabase.CollectionName),
		dataSources: datasource.NewService(logger, r.dataSources, remote, metrics, cfg.Metabase.DefaultEngine),
		charts:      chart.NewService(logger, r.queries, remote),
	}

	return &deps{
		pool:     pool,
		remote:   remote,
		metrics:  metrics,
		repos:    r,
		services: s,
	}
}

// NewHandler wires repositories, services and the BI client around pool and
// returns the complete HTTP handler. Metrics are registered with reg. The
// returned stop function releases background resources.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, reg *prometheus.Registry) (http.Handler, func()) {
	return newHTTPHandler(cfg, logger, newDeps(cfg, logger, pool, reg))
}

// newHTTPHandler builds the router and wraps it in the middleware chain.
// The returned stop function releases background resources.
func newHTTPHandler(cfg *config.Config, logger *slog.Logger, d *deps) (http.Handler, func()) {
	s := d.services

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(d.pool, d.remote, BuildVersion()),
		Auth:        rest.NewAuthHandler(s.auth, d.repos.users, logger),
		Users:       rest.NewUserHandler(s.users, logger),
		Roles:       rest.NewRoleHandler(s.roles, logger),
		Audit:       rest.NewAuditHandler(s.audit, logger),
		Dashboards:  rest.NewDashboardHandler(s.dashboards, logger),
		Queries:     rest.NewQueryHandler(s.queries, logger),
		DataSources: rest.NewDataSourceHandler(s.dataSources, logger),
		Charts:      rest.NewChartHandler(s.charts, s.dataSources, logger),
		Metrics:     d.metrics.Handler(),
	})

	loaderRepos := &dataloader.Repos{
		Users:       d.repos.users,
		DataSources: d.repos.dataSources,
	}

	var limit middleware.Middleware
	stop := func() {}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, rateLimitCleanup)
		limit = limiter.Limit()
		stop = limiter.Stop
	}

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Metrics(d.metrics),
		middleware.CORS(cfg.CORS),
		limit,
		middleware.Auth(s.auth, cfg.Auth.DisableAuth),
		middleware.Logger(logger),
		dataloader.Middleware(loaderRepos),
	)

	return chain(router), stop
}
