package stub

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/primetrade/product-dashboard/internal/core/domain"
	"github.com/primetrade/product-dashboard/internal/stub/handler"
	"github.com/primetrade/product-dashboard/internal/stub/middleware"
	"github.com/primetrade/product-dashboard/internal/stub/store"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(s *store.Store, jwtSecret string, sessionTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// Each router carries its own registry so tests can build routers
	// side by side without metric name collisions.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "stub",
		Registerer: reg,
	}))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(s, jwtSecret, sessionTTL)
	productHandler := handler.NewProductHandler(s)
	accountHandler := handler.NewAccountHandler(s)
	session := middleware.Session(jwtSecret, s)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/logout", authHandler.Logout)
	e.GET("/auth/current-user", authHandler.CurrentUser, session)

	// --- Product routes ---
	products := e.Group("/product", session)
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create, adminOnly)
	products.PATCH("/:id", productHandler.Update, adminOnly)
	products.DELETE("/:id", productHandler.Delete, adminOnly)

	// --- User administration routes ---
	users := e.Group("/user", session, adminOnly)
	users.GET("", accountHandler.List)
	users.DELETE("/:id", accountHandler.Delete)

	// --- Operational endpoints ---
	e.GET("/health", handler.Health)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: reg,
	}))

	return e
}
