package main

import (
	"context"
	"net/http"
	"os"

	"github.com/alessaops/storefront-backend/api/routes"
	"github.com/alessaops/storefront-backend/internal/delivery"
	"github.com/alessaops/storefront-backend/internal/menu"
	"github.com/alessaops/storefront-backend/internal/tenants"
	"github.com/alessaops/storefront-backend/pkg/config"
	"github.com/alessaops/storefront-backend/pkg/db"
	"github.com/alessaops/storefront-backend/pkg/logger"
	"github.com/alessaops/storefront-backend/pkg/metrics"
	"github.com/alessaops/storefront-backend/pkg/migrate"
	"github.com/alessaops/storefront-backend/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	tenantService, err := tenants.NewService(tenants.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create tenant service", err)
		os.Exit(1)
	}

	menuService, err := menu.NewService(menu.NewRepository(dbClient.DB()), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create menu service", err)
		os.Exit(1)
	}

	var deliveryQuoter delivery.Quoter
	if cfg.Delivery.ProviderBaseURL != "" && cfg.Delivery.ProviderAPIKey != "" {
		deliveryClient, err := delivery.NewClient(
			cfg.Delivery.ProviderBaseURL,
			cfg.Delivery.ProviderAPIKey,
			delivery.WithTimeout(cfg.Delivery.RequestTimeout),
		)
		if err != nil {
			logg.Error(context.Background(), "failed to create delivery client", err)
			os.Exit(1)
		}
		deliveryQuoter = deliveryClient
	} else {
		logg.Warn(context.Background(), "delivery provider not configured, quotes fall back to base fees")
	}
	deliveryService := delivery.NewService(deliveryQuoter, redisClient, cfg.Delivery.QuoteCacheTTL, logg)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	quoteMetrics := metrics.NewQuoteMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting storefront api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			registry,
			tenantService,
			menuService,
			deliveryService,
			quoteMetrics,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
