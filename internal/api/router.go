package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gearguard/maintenance-tracker/internal/api/handler"
	"github.com/gearguard/maintenance-tracker/internal/api/middleware"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
	"github.com/gearguard/maintenance-tracker/internal/core/session"
	"github.com/gearguard/maintenance-tracker/pkg/logger"
)

// Deps carries the wired components the router exposes over HTTP.
type Deps struct {
	Mongo       *mongo.Database
	Redis       *redis.Client
	Sessions    *session.Store
	Auth        ports.AuthManager
	Equipment   ports.EquipmentService
	Maintenance ports.MaintenanceService
	Teams       ports.TeamService
	Dashboard   ports.DashboardService
	Tokens      middleware.TokenParser
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gearguard"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	equipmentHandler := handler.NewEquipmentHandler(deps.Equipment)
	maintenanceHandler := handler.NewMaintenanceHandler(deps.Maintenance)
	teamHandler := handler.NewTeamHandler(deps.Teams)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)

	// --- Auth routes (public) ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/signup", authHandler.Signup)

	// --- Auth routes (token-protected) ---
	authMW := middleware.Auth(deps.Tokens)
	e.POST("/auth/logout", authHandler.Logout, authMW)
	e.GET("/auth/profile", authHandler.Profile, authMW)

	// --- Page views, gated by the session store ---
	guard := middleware.Guard(deps.Sessions)
	managerOnly := middleware.RBAC("manager", "admin")
	adminOnly := middleware.RBAC("admin")

	v1 := e.Group("/v1", guard)

	v1.GET("/dashboard/stats", dashboardHandler.Stats)
	v1.GET("/dashboard/activity", dashboardHandler.Activity)

	v1.GET("/equipment", equipmentHandler.List)
	v1.POST("/equipment", equipmentHandler.Create)
	v1.GET("/equipment/:id", equipmentHandler.Get)
	v1.DELETE("/equipment/:id", equipmentHandler.Delete, managerOnly)

	v1.GET("/maintenance", maintenanceHandler.List)
	v1.POST("/maintenance", maintenanceHandler.Create)
	v1.GET("/maintenance/:id", maintenanceHandler.Get)
	v1.POST("/maintenance/:id/transition", maintenanceHandler.Transition)
	v1.DELETE("/maintenance/:id", maintenanceHandler.Delete, managerOnly)

	v1.GET("/teams", teamHandler.List)
	v1.POST("/teams", teamHandler.Create, adminOnly)
	v1.DELETE("/teams/:id", teamHandler.Delete, adminOnly)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
