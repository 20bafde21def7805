package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/accubooks/accounting-system/internal/api"
	"github.com/accubooks/accounting-system/internal/api/metrics"
	"github.com/accubooks/accounting-system/internal/infrastructure/db/mongo"
	"github.com/accubooks/accounting-system/internal/infrastructure/db/redis"
	"github.com/accubooks/accounting-system/internal/pkg/config"
	"github.com/accubooks/accounting-system/pkg/logger"
)

func main() {
	loadLocalEnv()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// The hosted directory is optional: without it, logins fall back to the
	// local credential store only.
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Warn().Err(err).Msg("hosted directory unavailable; running local-only authentication")
		db = nil
	} else {
		defer func() {
			if err := mongoClient.Disconnect(ctx); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect failed")
			}
		}()
	}

	app := api.NewApp(db, rdb, cfg, log)

	dispatcherCtx, stopDispatcher := context.WithCancel(ctx)
	defer stopDispatcher()
	app.Dispatcher.Start(dispatcherCtx)

	// Daily alert digest: recompute stock alerts, refresh the gauges and log
	// them so operators see low stock without opening the dashboard.
	digest := cron.New()
	if _, err := digest.AddFunc(cfg.AlertDigestSpec, func() {
		alerts, err := app.Inventory.Alerts(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("alert digest failed")
			return
		}
		metrics.PublishStockAlerts(alerts)
		for _, a := range alerts {
			log.Info().
				Str("product_id", a.Product.ID).
				Str("alert_type", string(a.AlertType)).
				Msg(a.Message)
		}
	}); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.AlertDigestSpec).Msg("invalid alert digest schedule")
	}
	digest.Start()
	defer digest.Stop()

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := app.Echo.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutting down")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.Echo.Shutdown(ctxShutdown); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
}

func loadLocalEnv() {
	if err := godotenv.Load(); err == nil {
		return
	}
	// No .env file: rely on the existing environment.
}
