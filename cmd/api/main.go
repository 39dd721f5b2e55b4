// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/techbuzz-api/internal/auth"
	"github.com/carterperez-dev/techbuzz-api/internal/config"
	"github.com/carterperez-dev/techbuzz-api/internal/core"
	"github.com/carterperez-dev/techbuzz-api/internal/coupon"
	"github.com/carterperez-dev/techbuzz-api/internal/health"
	"github.com/carterperez-dev/techbuzz-api/internal/middleware"
	"github.com/carterperez-dev/techbuzz-api/internal/payment"
	"github.com/carterperez-dev/techbuzz-api/internal/product"
	"github.com/carterperez-dev/techbuzz-api/internal/review"
	"github.com/carterperez-dev/techbuzz-api/internal/server"
	"github.com/carterperez-dev/techbuzz-api/internal/stats"
	"github.com/carterperez-dev/techbuzz-api/internal/trending"
	"github.com/carterperez-dev/techbuzz-api/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected", "name", cfg.Database.Name)

	tokens, err := auth.NewTokenManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("token manager initialized",
		"algorithm", "HS256",
		"expire", cfg.JWT.Expire,
	)

	userRepo := user.NewRepository(db.Collection("users"))
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	productRepo := product.NewRepository(db.Collection("products"))
	productSvc := product.NewService(productRepo)
	productHandler := product.NewHandler(productSvc)

	trendingRepo := trending.NewRepository(db.Collection("trending"))
	trendingHandler := trending.NewHandler(trendingRepo)

	reviewRepo := review.NewRepository(db.Collection("reviews"))
	reviewHandler := review.NewHandler(reviewRepo)

	couponRepo := coupon.NewRepository(db.Collection("coupons"))
	couponSvc := coupon.NewService(couponRepo)
	couponHandler := coupon.NewHandler(couponSvc)

	paymentRepo := payment.NewRepository(db.Collection("payments"))
	paymentSvc := payment.NewService(
		paymentRepo,
		couponSvc,
		payment.NewStripeProvider(cfg.Stripe.SecretKey),
		cfg.Stripe.Currency,
	)
	paymentHandler := payment.NewHandler(paymentSvc)

	statsSvc := stats.NewService(userRepo, productRepo, reviewRepo)
	statsHandler := stats.NewHandler(statsSvc, db.Ping)

	authHandler := auth.NewHandler(tokens)
	healthHandler := health.NewHandler(db)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(tokens)
	adminOnly := middleware.RequireStoredRole(userSvc, user.RoleAdmin)
	moderatorOnly := middleware.RequireStoredRole(userSvc, user.RoleModerator)

	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		core.OK(w, map[string]string{"message": "techbuzz server is running"})
	})

	router.Group(func(r chi.Router) {
		authHandler.RegisterRoutes(r)
		userHandler.RegisterRoutes(r, authenticator, adminOnly)
		productHandler.RegisterRoutes(r, authenticator, moderatorOnly)
		trendingHandler.RegisterRoutes(r)
		reviewHandler.RegisterRoutes(r)
		couponHandler.RegisterRoutes(r, authenticator, adminOnly)
		paymentHandler.RegisterRoutes(r)
		statsHandler.RegisterRoutes(r, authenticator, moderatorOnly, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
