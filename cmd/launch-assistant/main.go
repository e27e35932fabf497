// cmd/launch-assistant/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"launch-assistant/internal/catalog"
	awsclient "launch-assistant/internal/common/aws"
	"launch-assistant/internal/common/config"
	"launch-assistant/internal/common/database"
	"launch-assistant/internal/common/logger"
	"launch-assistant/internal/common/observability"
	"launch-assistant/internal/email"
	"launch-assistant/internal/leads"
	"launch-assistant/internal/milestones"
	"launch-assistant/internal/planner"
	"launch-assistant/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting launch assistant...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("launch-assistant")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL lead store (optional) with retry ---
	var db *sql.DB
	if cfg.Storage.Postgres.Host != "" {
		err = retryWithBackoff(func() error {
			var err error
			db, err = database.NewPostgres(cfg.Storage.Postgres)
			return err
		}, 10, 2*time.Second, zapLog, "PostgreSQL connection")

		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer db.Close()
		zapLog.Info("PostgreSQL connected successfully")
	} else {
		zapLog.Info("No postgres host configured, lead capture disabled")
	}

	// --- Init milestone store (file or redis backend) ---
	var milestoneStore milestones.Store
	switch cfg.Storage.MilestoneBackend {
	case "redis":
		var redisClient *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Storage.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redisClient.Close()
		zapLog.Info("Redis connected successfully")

		milestoneStore = milestones.NewRedisStore(redisClient.GetClient(), log)
	default:
		milestoneStore = milestones.NewFileStore(cfg.Storage.MilestonePath, log)
	}
	engine := milestones.NewEngine(milestoneStore, log)

	// --- Load reference data ---
	external := catalog.LoadExternal(cfg.Data.StrategiesPath, log)
	competitive := catalog.LoadCompetitive(cfg.Data.CompetitivePath, log)

	// --- Init plan assembler ---
	ai := planner.NewAIClient(planner.LoadConfig(cfg), log)
	assembler := planner.NewAssembler(external, ai, obs, log)

	// --- Init email delivery ---
	emailCfg := email.LoadConfig(cfg)
	var emailService *email.Service
	if err := emailCfg.Validate(); err != nil {
		zapLog.Warn("Email delivery not configured", zap.Error(err))
	} else {
		var provider email.Provider
		if emailCfg.SESEnabled {
			sesClient, err := awsclient.NewSESClient(ctx, emailCfg.AWSRegion)
			if err != nil {
				zapLog.Fatal("ses client init failed", zap.Error(err))
			}
			provider = email.NewSESProvider(sesClient)
		} else {
			provider = email.NewSMTPProvider(emailCfg)
		}
		emailService = email.NewService(emailCfg, provider, log)
		zapLog.Info("Email delivery configured", zap.String("provider", provider.Name()))
	}

	// --- Init CRM client and lead store ---
	crm := leads.NewCRMClient(
		cfg.Integrations.EngageBay.APIKey,
		cfg.Integrations.EngageBay.BaseURL,
		cfg.Integrations.EngageBay.Source,
	)
	if !crm.Configured() {
		zapLog.Info("No EngageBay API key configured, CRM sync disabled")
	}
	leadStore := leads.NewStore(db, log)

	srv := server.NewServer(assembler, engine, emailService, crm, leadStore, competitive, log)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: srv.Routes(),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}

	zapLog.Info("Launch assistant stopped gracefully")
}
