package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/flowboard/workflow-api/docs"
	"github.com/flowboard/workflow-api/internal/api/handler"
	"github.com/flowboard/workflow-api/internal/api/middleware"
	"github.com/flowboard/workflow-api/internal/core/domain"
	"github.com/flowboard/workflow-api/internal/core/service"
	"github.com/flowboard/workflow-api/internal/infrastructure/db/postgres"
	redisdb "github.com/flowboard/workflow-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// It fails when no token signing secret is configured: the service must not
// come up unable to issue or validate tokens.
func NewRouter(db *sql.DB, rdb *redis.Client, jwtSecret string, log zerolog.Logger) (*echo.Echo, error) {
	tokens, err := service.NewTokenManager(jwtSecret)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("workflow"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	workflowRepo := postgres.NewWorkflowRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)
	summaryCache := redisdb.NewSummaryCache(rdb)

	authService := service.NewAuthService(userRepo, tokens)
	workflowService := service.NewWorkflowService(workflowRepo, summaryCache, log)

	authHandler := handler.NewAuthHandler(authService, denylist, log)
	workflowHandler := handler.NewWorkflowHandler(workflowService)
	authMiddleware := middleware.Auth(tokens, denylist)

	// --- API routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/login", authHandler.Login)

	protected := apiGroup.Group("", authMiddleware)
	protected.GET("/me", authHandler.Me)
	protected.POST("/logout", authHandler.Logout)
	protected.GET("/workflows", workflowHandler.List)
	protected.GET("/workflows/:id", workflowHandler.Get)
	protected.GET("/dashboard/summary", workflowHandler.Summary,
		middleware.RBAC(domain.RoleAdmin, domain.RoleManager))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
