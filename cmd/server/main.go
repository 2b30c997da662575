package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/api"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/api/handlers"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/backend"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/cache"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/config"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/repository/postgres"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg := zap.NewDevelopmentConfig()
	if cfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zapCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Connect to database and bootstrap the cart schema
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.EnsureSchema(db); err != nil {
		logger.Fatal("Failed to ensure schema", zap.Error(err))
	}

	// Redis read cache
	redisClient := cache.NewRedisClient(cfg.Redis)
	defer redisClient.Close()
	readCache := cache.New(redisClient, cfg.Cache.TTL, logger)

	// Commerce backend client
	client := backend.NewClient(cfg.Backend, logger)

	// Services
	catalog := service.NewCatalogService(client, readCache, logger)
	cartRepo := postgres.NewCartRepository(db, cfg.Cache.CartTTL, logger)
	carts := service.NewCartService(cartRepo, catalog, logger)

	// Sweep abandoned carts past their idle TTL.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			purged, err := cartRepo.PurgeExpired(ctx)
			cancel()
			if err != nil {
				logger.Warn("Cart purge failed", zap.Error(err))
				continue
			}
			if purged > 0 {
				logger.Info("Purged expired carts", zap.Int64("count", purged))
			}
		}
	}()

	svcs := &handlers.Services{
		Catalog:  catalog,
		Carts:    carts,
		Bookings: service.NewBookingService(client, readCache, logger),
		Orders:   service.NewOrderService(client, carts, logger),
		Uploads:  service.NewUploadService(cfg.Cloudinary, logger),
		Content:  service.NewContentService(client, readCache, logger),
	}

	router := api.NewRouter(cfg, svcs, logger)

	logger.Info("Starting storefront server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("backend", cfg.Backend.BaseURL),
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
