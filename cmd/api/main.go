package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kamaops/salesops-backend/internal/config"
	"github.com/kamaops/salesops-backend/internal/domain"
	"github.com/kamaops/salesops-backend/internal/handler"
	"github.com/kamaops/salesops-backend/internal/middleware"
	"github.com/kamaops/salesops-backend/internal/repository/memory"
	"github.com/kamaops/salesops-backend/internal/repository/postgres"
	"github.com/kamaops/salesops-backend/internal/service"
	"github.com/kamaops/salesops-backend/internal/websocket"
)

// repositories groups the ledger repositories behind their domain interfaces
// so main can wire either backend the same way.
type repositories struct {
	salespeople domain.SalespersonRepository
	customers   domain.CustomerRepository
	orders      domain.OrderRepository
	invoices    domain.InvoiceRepository
	activities  domain.ActivityRepository
	projections domain.ProjectionRepository
	stock       domain.FGStockRepository
}

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Wire the storage backend. Without a DATABASE_URL the server runs on the
	// seeded in-memory store, which is how the demo environment ships.
	var repos repositories
	if cfg.DatabaseURL != "" {
		pool, err := postgres.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer pool.Close()
		log.Info().Msg("Connected to database")

		repos = repositories{
			salespeople: postgres.NewSalespersonRepository(pool),
			customers:   postgres.NewCustomerRepository(pool),
			orders:      postgres.NewOrderRepository(pool),
			invoices:    postgres.NewInvoiceRepository(pool),
			activities:  postgres.NewActivityRepository(pool),
			projections: postgres.NewProjectionRepository(pool),
			stock:       postgres.NewFGStockRepository(pool),
		}
	} else {
		store := memory.NewStore()
		memory.Seed(store, time.Now().In(cfg.ReportingTZ))
		log.Info().Msg("Running on seeded in-memory store")

		repos = repositories{
			salespeople: memory.NewSalespersonRepository(store),
			customers:   memory.NewCustomerRepository(store),
			orders:      memory.NewOrderRepository(store),
			invoices:    memory.NewInvoiceRepository(store),
			activities:  memory.NewActivityRepository(store),
			projections: memory.NewProjectionRepository(store),
			stock:       memory.NewFGStockRepository(store),
		}
	}

	// Exchange rates: built-in table with per-currency environment overrides.
	rates := service.DefaultRates()
	rates[domain.CurrencyUSD] = cfg.FXRateUSD
	rates[domain.CurrencyEUR] = cfg.FXRateEUR
	currencyService, err := service.NewCurrencyService(rates)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid exchange rate configuration")
	}

	// Initialize services
	prorationService := service.NewProrationService()
	metricsService := service.NewMetricsService(repos.salespeople, repos.customers,
		repos.orders, repos.invoices, repos.activities, repos.projections,
		currencyService, prorationService)
	activityService := service.NewActivityService(repos.activities, repos.customers)
	projectionService := service.NewProjectionService(repos.projections, repos.customers)
	customerService := service.NewCustomerService(repos.customers, repos.salespeople,
		repos.orders, repos.invoices, repos.activities, repos.projections, repos.stock)

	// WebSocket hub pushes change events to connected dashboards
	hub := websocket.NewHub()
	activityService.SetEventPublisher(hub)
	projectionService.SetEventPublisher(hub)
	customerService.SetEventPublisher(hub)

	// Initialize handlers
	dashboardHandler := handler.NewDashboardHandler(metricsService)
	activityHandler := handler.NewActivityHandler(activityService)
	customerHandler := handler.NewCustomerHandler(customerService)
	adminHandler := handler.NewAdminHandler(customerService, projectionService)
	wsHandler := handler.NewWebSocketHandler(hub, cfg.CORSOrigins)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Per-client rate limiting
	rateLimiter := middleware.NewRateLimiter()
	defer rateLimiter.Stop()
	e.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes
	handler.RegisterRoutes(e, dashboardHandler, activityHandler, customerHandler, adminHandler, wsHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
