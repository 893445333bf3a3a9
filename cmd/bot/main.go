package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medinabot/internal/completion"
	"medinabot/internal/config"
	"medinabot/internal/handler"
	"medinabot/internal/locale"
	"medinabot/internal/repository"
	"medinabot/internal/repository/memory"
	"medinabot/internal/repository/postgres"
	"medinabot/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting MEDINA Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	catalog, err := locale.Load()
	if err != nil {
		logger.Fatal("Failed to load locale templates", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.Int64("admin_id", cfg.AdminID),
		zap.String("completion_model", cfg.Completion.Model),
		zap.Bool("activity_sink", cfg.DatabaseEnabled()),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional activity sink
	var sink repository.ActivitySink
	if cfg.DatabaseEnabled() {
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connection established")

		if err := runMigrations(db, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		sink = postgres.NewActivityRepo(db)
	}

	// Initialize repositories
	sessions := memory.NewSessionStore(cfg.AdminID)
	pending := memory.NewPendingStore()
	activityLog := memory.NewActivityLog(cfg.ActivityCapacity)

	// Initialize services
	activityService := service.NewActivityService(activityLog, sink, cfg.ActivityRetentionDays, logger)
	quotaService := service.NewQuotaService(nil)
	adminService := service.NewAdminService(sessions, pending, activityService, catalog, logger)
	completer := completion.New(completion.Config{
		URL:         cfg.Completion.URL,
		APIKey:      cfg.Completion.APIKey,
		Model:       cfg.Completion.Model,
		Temperature: cfg.Completion.Temperature,
	})
	router := service.NewRouter(
		sessions,
		adminService,
		quotaService,
		activityService,
		completer,
		catalog,
		cfg.Completion.Timeout,
		logger,
	)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Telegram handler error", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(ctx, bot, router, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	if sink != nil {
		go activityService.RunSink(ctx)
		go runCleanupJob(ctx, activityService, logger)
	}

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		metricsServer = startMetricsServer(cfg.MetricsAddr, logger)
	}

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to stop metrics server", zap.Error(err))
		}
		shutdownCancel()
	}

	logger.Info("Bot stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sqlx.DB, error) {
	var db *sqlx.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sqlx.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db.DB, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// cleanupTimeout bounds one retention delete
const cleanupTimeout = time.Minute

func cleanup(ctx context.Context, activityService *service.ActivityService) error {
	ctx, cancel := context.WithTimeout(ctx, cleanupTimeout)
	defer cancel()
	return activityService.CleanupOldData(ctx)
}

// runCleanupJob prunes old activity rows once at startup and then daily
func runCleanupJob(ctx context.Context, activityService *service.ActivityService, logger *zap.Logger) {
	if err := cleanup(ctx, activityService); err != nil {
		logger.Error("Failed to run initial cleanup", zap.Error(err))
	}

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			logger.Info("Running scheduled cleanup")
			if err := cleanup(ctx, activityService); err != nil {
				logger.Error("Failed to run scheduled cleanup", zap.Error(err))
			}
		}
	}
}

// startMetricsServer exposes prometheus metrics on addr
func startMetricsServer(addr string, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Metrics server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", zap.Error(err))
		}
	}()

	return srv
}
