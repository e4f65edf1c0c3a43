package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/accessgate/rbac-system/internal/api/handler"
	"github.com/accessgate/rbac-system/internal/api/middleware"
	"github.com/accessgate/rbac-system/internal/core/ports"
	"github.com/accessgate/rbac-system/internal/core/service"
	"github.com/accessgate/rbac-system/internal/infrastructure/config"
	mongodb "github.com/accessgate/rbac-system/internal/infrastructure/db/mongo"
	redisdb "github.com/accessgate/rbac-system/internal/infrastructure/db/redis"
)

// NewRouter wires the production dependency graph: Mongo-backed user
// directory, Redis-backed login limiter, and HS256 token service keyed
// from configuration.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	users := mongodb.NewUserRepository(db)
	tokens := service.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.AttemptWindow)

	return newRouter(routerDeps{
		users:   users,
		tokens:  tokens,
		limiter: limiter,
		audit:   audit,
		mongo:   db,
		redis:   rdb,
		log:     log,
	})
}

type routerDeps struct {
	users   ports.UserRepository
	tokens  ports.TokenService
	limiter ports.LoginLimiter
	audit   ports.AuditRecorder
	mongo   *mongo.Database
	redis   *redis.Client
	log     zerolog.Logger
}

func newRouter(deps routerDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	// Per-router registry so rebuilding the router (tests) never
	// collides on duplicate registration; /metrics exposes it merged
	// with the default registry carrying the custom auth metrics.
	registry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "rbac",
		Registerer: registry,
	}))

	// --- Dependencies ---
	authService := service.NewAuthService(deps.users, deps.tokens, deps.limiter, deps.audit, deps.log)
	authHandler := handler.NewAuthHandler(authService)
	panelHandler := handler.NewPanelHandler()
	authGate := middleware.Auth(deps.tokens, deps.log)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)

	// --- Protected panels, allow-lists from the policy table ---
	panels := map[string]echo.HandlerFunc{
		"/dashboard":   panelHandler.Dashboard,
		"/admin-panel": panelHandler.AdminPanel,
		"/mod-panel":   panelHandler.ModPanel,
		"/user-panel":  panelHandler.UserPanel,
	}
	for path, h := range panels {
		e.GET(path, h, authGate, middleware.RequireRoles(RoutePolicies[path]))
	}

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.mongo, deps.redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{registry, prometheus.DefaultGatherer},
	}))

	return e
}
