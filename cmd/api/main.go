package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/chrisospina/contact-manager/internal/bootstrap"
	"github.com/chrisospina/contact-manager/internal/config"
	"github.com/chrisospina/contact-manager/internal/infrastructure/db/models"
	"github.com/chrisospina/contact-manager/internal/infrastructure/repository"
	"github.com/chrisospina/contact-manager/internal/infrastructure/seed"
	"github.com/chrisospina/contact-manager/internal/pkg/logger"
	"github.com/chrisospina/contact-manager/internal/realtime"
	"github.com/chrisospina/contact-manager/internal/realtime/bus"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLog, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLog.Sync()

	db, err := openDatabase(cfg.Database)
	if err != nil {
		appLog.Fatal("failed to connect database", "error", err)
	}

	if err := db.AutoMigrate(&models.Contact{}, &models.EmailAddress{}, &models.Address{}); err != nil {
		appLog.Fatal("failed to migrate schema", "error", err)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	hub := realtime.NewHub(appLog)

	var publisher realtime.Publisher
	var changeBus bus.Bus
	if cfg.Redis.Addr != "" {
		changeBus, err = bus.NewRedisBus(cfg.Redis.Addr, cfg.Redis.Channel, appLog)
		if err != nil {
			appLog.Fatal("failed to connect redis bus", "error", err)
		}
		if err := changeBus.StartForwarder(rootCtx, func(msg realtime.Message) {
			hub.Broadcast(msg)
		}); err != nil {
			appLog.Fatal("failed to start bus forwarder", "error", err)
		}
		publisher = changeBus
	}

	notifier := realtime.NewBroadcaster(hub, publisher, appLog)

	if cfg.Seed.Enabled {
		if err := runSeed(rootCtx, cfg.Database, db, appLog); err != nil {
			appLog.Fatal("failed to seed contacts", "error", err)
		}
	}

	server := bootstrap.NewHTTPServer(db, hub, notifier)

	go func() {
		appLog.Info("starting server", "addr", cfg.Addr(), "driver", cfg.Database.Driver)
		if err := server.Start(cfg.Addr()); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stop()
	if changeBus != nil {
		_ = changeBus.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Fatal("graceful shutdown failed", "error", err)
	}
}

func openDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.Driver == "postgres" {
		return gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	}

	dsn := cfg.DSN
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// runSeed bulk-loads sample data with COPY on postgres and falls back to
// per-record creates on the in-memory provider.
func runSeed(ctx context.Context, cfg config.DatabaseConfig, db *gorm.DB, appLog *logger.Logger) error {
	if cfg.Driver == "postgres" {
		pool, err := pgxpool.New(ctx, cfg.DSN)
		if err != nil {
			return err
		}
		defer pool.Close()

		return seed.NewPgxSeeder(pool, appLog).Run(ctx)
	}

	return seed.SeedRepository(ctx, repository.NewContactRepository(db), appLog)
}
