package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/civicworks/complaint-system/internal/api/handler"
	"github.com/civicworks/complaint-system/internal/api/middleware"
	"github.com/civicworks/complaint-system/internal/core/domain"
	"github.com/civicworks/complaint-system/internal/core/service"
	"github.com/civicworks/complaint-system/internal/infrastructure/config"
	"github.com/civicworks/complaint-system/internal/infrastructure/db/postgres"
	rediscache "github.com/civicworks/complaint-system/internal/infrastructure/db/redis"
	"github.com/civicworks/complaint-system/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *postgres.DB, rdb *redis.Client) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("complaint"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	agencyRepo := postgres.NewAgencyRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	complaintRepo := postgres.NewComplaintRepository(db)
	categoryCache := rediscache.NewCategoryCache(rdb, log)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiration)
	authService := service.NewAuthService(userRepo, tokenService, log)
	userService := service.NewUserService(userRepo, agencyRepo, db, log)
	agencyService := service.NewAgencyService(agencyRepo, userRepo, db, log)
	categoryService := service.NewCategoryService(categoryRepo, complaintRepo, categoryCache, log)
	complaintService := service.NewComplaintService(complaintRepo, userRepo, agencyRepo, categoryRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	agencyHandler := handler.NewAgencyHandler(agencyService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	complaintHandler := handler.NewComplaintHandler(complaintService)

	authRequired := middleware.Auth(tokenService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	v1 := e.Group("/api/v1")

	// --- Auth routes ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	// --- User management (administrators only) ---
	users := v1.Group("/users", authRequired, adminOnly)
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.GetByID)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Agencies: reads for everyone signed in, writes for administrators ---
	agencies := v1.Group("/agencies", authRequired)
	agencies.GET("", agencyHandler.List)
	agencies.GET("/:id", agencyHandler.GetByID)
	agencies.POST("", agencyHandler.Create, adminOnly)
	agencies.PUT("/:id", agencyHandler.Update, adminOnly)
	agencies.DELETE("/:id", agencyHandler.Delete, adminOnly)

	// --- Categories: reads for everyone signed in, writes for administrators ---
	categories := v1.Group("/categories", authRequired)
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.GetByID)
	categories.POST("", categoryHandler.Create, adminOnly)
	categories.PUT("/:id", categoryHandler.Update, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, adminOnly)

	// --- Complaints: any authenticated account ---
	complaints := v1.Group("/complaints", authRequired)
	complaints.POST("", complaintHandler.Create)
	complaints.GET("", complaintHandler.List)
	complaints.GET("/:id", complaintHandler.GetByID)
	complaints.PUT("/:id", complaintHandler.Update)
	complaints.DELETE("/:id", complaintHandler.Delete)

	e.Server.ReadHeaderTimeout = 10 * time.Second

	return e
}
