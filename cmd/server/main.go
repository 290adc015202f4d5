package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dukerupert/vanir/internal"
	"github.com/dukerupert/vanir/internal/auth"
	"github.com/dukerupert/vanir/internal/bootstrap"
	adminhandler "github.com/dukerupert/vanir/internal/handler/admin"
	"github.com/dukerupert/vanir/internal/handler/storefront"
	"github.com/dukerupert/vanir/internal/middleware"
	"github.com/dukerupert/vanir/internal/repository"
	"github.com/dukerupert/vanir/internal/router"
	"github.com/dukerupert/vanir/internal/routes"
	"github.com/dukerupert/vanir/internal/service"
	"github.com/dukerupert/vanir/internal/telemetry"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database/sql connection for migrations
	logger.Info("Connecting to database...")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	// Run migrations
	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize pgx connection pool for application
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	// Initialize repository and transaction store
	repo := repository.New(pool)
	store := repository.NewStore(pool)

	// Token manager for issuing and verifying access tokens
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTL)*time.Minute)

	// Initialize services
	userService := service.NewUserService(repo, tokens)
	productService := service.NewProductService(repo)
	cartService := service.NewCartService(repo, store)
	checkoutService := service.NewCheckoutService(repo, store, logger)
	orderService := service.NewOrderService(repo)
	addressService := service.NewAddressService(repo, store)
	reviewService := service.NewReviewService(repo)
	dashboardService := service.NewDashboardService(repo)

	// Create the initial super admin account if needed
	if err := bootstrap.EnsureMasterAdmin(ctx, repo, &cfg.Admin, logger); err != nil {
		return fmt.Errorf("admin bootstrap failed: %w", err)
	}

	// Initialize metrics
	metrics := middleware.NewMetrics("vanir")
	business := telemetry.NewBusinessMetrics("vanir")

	// Build route dependencies
	storefrontDeps := routes.StorefrontDeps{
		AuthHandler:     storefront.NewAuthHandler(userService, business, logger),
		ProductHandler:  storefront.NewProductHandler(productService, reviewService, business, logger),
		CartHandler:     storefront.NewCartHandler(cartService, business, logger),
		CheckoutHandler: storefront.NewCheckoutHandler(checkoutService, business, logger),
		OrderHandler:    storefront.NewOrderHandler(orderService, business, logger),
		AddressHandler:  storefront.NewAddressHandler(addressService, logger),
		ProfileHandler:  storefront.NewProfileHandler(userService, reviewService, logger),
	}

	adminDeps := routes.AdminDeps{
		DashboardHandler: adminhandler.NewDashboardHandler(dashboardService, logger),
		UserHandler:      adminhandler.NewUserHandler(userService, logger),
		ProductHandler:   adminhandler.NewProductHandler(productService, logger),
		OrderHandler:     adminhandler.NewOrderHandler(orderService, logger),
		ReviewHandler:    adminhandler.NewReviewHandler(reviewService, business, logger),
	}

	// Create router and register routes
	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		router.CORS(nil),
		middleware.WithUser(tokens),
		middleware.WithRequestLogger(logger),
		router.Logger(logger),
	)

	// Metrics endpoint (protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterStorefrontRoutes(r, storefrontDeps)
	routes.RegisterAdminRoutes(r, adminDeps)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "address", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		logger.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
