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

	"baletrack/internal/assistant"
	"baletrack/internal/config"
	"baletrack/internal/database"
	"baletrack/internal/logger"
	"baletrack/internal/middleware"
	"baletrack/internal/period"
	"baletrack/internal/router"
	"baletrack/internal/services"
	"baletrack/internal/validator"
)

// @title           BaleTrack API
// @version         1.0
// @description     BaleTrack records bale purchases and sales, business expenses and savings, and reports profit over calendar periods.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	migrations := os.Getenv("MIGRATIONS_PATH")
	if migrations == "" {
		migrations = database.DefaultMigrationsPath
	}
	if err := dbManager.RunMigrations(migrations); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	clock := period.SystemClock{}
	timeout := services.WithQueryTimeout(appConfig.DBQueryTimeout)

	baleService := services.NewBaleService(db, clock, timeout)
	expenseService := services.NewExpenseService(db, clock, timeout)

	prompt, err := assistant.DefaultPrompt()
	if err != nil {
		return fmt.Errorf("failed to load assistant prompt: %w", err)
	}
	var model assistant.Model
	if appConfig.GeminiAPIKey != "" {
		client, err := assistant.NewGeminiClient(context.Background(), appConfig.GeminiBaseURL, appConfig.GeminiAPIKey, appConfig.GeminiModel, &http.Client{})
		if err != nil {
			return fmt.Errorf("failed to create gemini client: %w", err)
		}
		model = client
	} else {
		log.Warn("GEMINI_API_KEY not set; AI assistant disabled")
	}

	engine := router.New(router.Deps{
		CORSAllowedOrigin: appConfig.CORSAllowedOrigin,
		Tokens:            middleware.NewTokenManager(appConfig.JWTSecret, appConfig.JWTExpirationDur),
		Users:             services.NewUserService(db, timeout),
		Bales:             baleService,
		Expenses:          expenseService,
		Savings:           services.NewSavingsService(db, clock, timeout),
		Reports:           services.NewReportService(baleService, expenseService, clock),
		Audit:             services.NewAuditService(db, timeout),
		Assistant:         assistant.NewService(prompt, model, appConfig.AIRequestTimeout, clock),
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting BaleTrack server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
