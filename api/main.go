package main

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/konnichiwabon/inventory/internal/auth"
	"github.com/konnichiwabon/inventory/internal/config"
	"github.com/konnichiwabon/inventory/internal/db"
	api "github.com/konnichiwabon/inventory/internal/http"
	"github.com/konnichiwabon/inventory/internal/http/handlers"
	"github.com/konnichiwabon/inventory/internal/http/ratelimit"
	"github.com/konnichiwabon/inventory/internal/logger"
	"github.com/konnichiwabon/inventory/internal/repo"
)

// @title Inventory Dashboard API
// @version 1.0
// @description Per-user inventory tracking with aggregate dashboard metrics.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log := logger.New()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("could not connect to redis: %v", err)
	}
	defer rdb.Close()

	issuer := auth.NewTokenIssuer([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	limiters := ratelimit.NewRegistry(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	go limiters.StartCleanupLoop()
	strikes := ratelimit.NewStrikeLog(rdb)

	productRepo := repo.NewPostgresProductRepository(database)
	if cfg.Database.SeedDemoOwner > 0 {
		if err := repo.SeedDemoProducts(ctx, productRepo, cfg.Database.SeedDemoOwner); err != nil {
			log.Fatalf("could not seed demo products: %v", err)
		}
		log.Infof("seeded demo products for user %d", cfg.Database.SeedDemoOwner)
	}

	server := handlers.NewServer(
		productRepo,
		repo.NewPostgresUserRepository(database),
		issuer,
		log,
	)

	r := api.NewRouter(server, issuer, limiters, strikes)
	log.Infof("server listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		log.Fatal(err)
	}
}
