package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/eventra/eventra/internal/adapter"
	"github.com/eventra/eventra/internal/config"
	"github.com/eventra/eventra/internal/logger"
	"github.com/eventra/eventra/internal/notification"
	"github.com/eventra/eventra/internal/reminder"
	"github.com/eventra/eventra/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

// The reminder binary runs once and exits; it is meant to be invoked by a
// scheduler (cron, Cloud Scheduler). The same job is also reachable through
// the API's bearer-authenticated jobs route.
func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadReminderConfig(*configFile, *envPath)
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
			"service": "reminder",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting reminder run")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)

	if cfg.Resend.APIKey == "" {
		logger.FatalCtx(ctx, "Resend API key is required")
	}
	mailer := notification.NewResendMailer(cfg.Resend.APIKey, cfg.Resend.From)

	job := reminder.NewJob(reminder.Config{
		WorkerPoolSize: cfg.Worker.PoolSize,
	}, dataStore, mailer, adapter.NewClock())

	summary, err := job.Run(ctx)
	if err != nil {
		logger.FatalCtx(ctx, "Reminder run failed", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Reminder run finished",
		zap.Int("events_processed", summary.EventsProcessed),
		zap.Int64("emails_sent", summary.EmailsSent),
		zap.Int64("emails_failed", summary.EmailsFailed),
	)
}
