package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/eventra/eventra/internal/adapter"
	"github.com/eventra/eventra/internal/api/middleware"
	"github.com/eventra/eventra/internal/api/rest"
	"github.com/eventra/eventra/internal/api/server"
	"github.com/eventra/eventra/internal/certificate"
	"github.com/eventra/eventra/internal/config"
	"github.com/eventra/eventra/internal/ledger"
	"github.com/eventra/eventra/internal/logger"
	"github.com/eventra/eventra/internal/messaging"
	"github.com/eventra/eventra/internal/notification"
	"github.com/eventra/eventra/internal/payment"
	"github.com/eventra/eventra/internal/providers/jetstream"
	"github.com/eventra/eventra/internal/purchase"
	"github.com/eventra/eventra/internal/reminder"
	"github.com/eventra/eventra/internal/resale"
	"github.com/eventra/eventra/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Eventra API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(30 * time.Second)
	jsonAdapter := adapter.NewJSON()

	// Connect to Hedera
	ledgerClient, err := ledger.NewHederaClient(ledger.Config{
		Network:           cfg.Hedera.Network,
		OperatorAccountID: cfg.Hedera.OperatorAccountID,
		OperatorKey:       cfg.Hedera.OperatorKey,
		TreasuryAccountID: cfg.Hedera.TreasuryAccountID,
	}, httpClient)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create Hedera client", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to Hedera", zap.String("network", cfg.Hedera.Network))

	// Payment gateway
	gateway := payment.NewPaystackGateway(cfg.Paystack.SecretKey, httpClient)

	// Transactional email
	if cfg.Resend.APIKey == "" {
		logger.FatalCtx(ctx, "Resend API key is required")
	}
	mailer := notification.NewResendMailer(cfg.Resend.APIKey, cfg.Resend.From)

	// Event publisher (optional)
	var publisher messaging.Publisher
	if cfg.NATS.Endpoint != "" {
		natsJS, err := adapter.NewNatsJetStream(cfg.NATS.Endpoint)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
		}

		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			StreamName: cfg.NATS.StreamName,
		}, natsJS, jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create publisher", zap.Error(err))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS endpoint not configured, event publishing disabled")
	}

	// Services
	purchases := purchase.NewService(dataStore, ledgerClient, gateway, mailer, publisher, clock)
	resales := resale.NewService(dataStore, clock)
	certificates := certificate.NewService(dataStore, ledgerClient, mailer, publisher, clock)
	reminders := reminder.NewJob(reminder.Config{
		WorkerPoolSize: cfg.Reminder.PoolSize,
	}, dataStore, mailer, clock)

	// REST handler
	handler := rest.NewHandler(dataStore, purchases, resales, certificates, reminders, ledgerClient, cfg.Paystack.WebhookSecret)

	// Create server config
	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}
	authConfig := middleware.AuthConfig{
		JWTPublicKey: cfg.Auth.JWTPublicKey,
		CronSecret:   cfg.Auth.CronSecret,
	}

	// Create and start server
	srv := server.New(serverConfig, handler, authConfig)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
