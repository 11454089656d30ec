package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loyalty-rewards/config"
	httpHandler "loyalty-rewards/internal/adapter/http/handler"
	"loyalty-rewards/internal/adapter/seed"
	"loyalty-rewards/internal/adapter/storage/memory"
	pgStorage "loyalty-rewards/internal/adapter/storage/postgres"
	redisStorage "loyalty-rewards/internal/adapter/storage/redis"
	"loyalty-rewards/internal/core/ports"
	"loyalty-rewards/internal/metrics"
	"loyalty-rewards/internal/service"
	"loyalty-rewards/pkg/logger"

	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("LRW_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("seed", cfg.Seed.Source).
		Msg("Starting Loyalty Rewards")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret is required (set LRW_JWT_SECRET)")
	}

	ctx := context.Background()
	var checkers []ports.HealthChecker

	// Restaurant seed
	source, seedChecker, closeSource, err := newSeedSource(ctx, cfg, logger.Component(log, "seed"))
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.Seed.Source).Msg("Failed to initialize restaurant seed")
	}
	defer closeSource()
	if seedChecker != nil {
		checkers = append(checkers, seedChecker)
	}

	// Optional Redis: gesture replay cache and rate limiting
	var (
		releaseCache   ports.ReleaseCache
		rateLimitStore ports.RateLimitStore
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, logger.Component(log, "redis"))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		releaseCache = redisStorage.NewReleaseCache(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled: no drag-end replay cache, no rate limiting")
	}

	// Metrics
	var rec *metrics.Recorder
	var confirmations ports.ConfirmationRecorder
	if cfg.Metrics.Enabled {
		rec = metrics.NewRecorder()
		confirmations = rec
	}

	// Core services
	hashSvc := service.NewArgon2HashService(service.DefaultArgon2Params())
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authSvc := service.NewAuthService(memory.NewUserRepo(), hashSvc, tokenSvc)
	sessionSvc := service.NewSessionService(
		source,
		func() ports.BalanceStore { return memory.NewBalanceStore() },
		service.SliderGeometry{
			MaxTravel:      cfg.Slider.MaxTravel,
			Cutoff:         cfg.Slider.Cutoff(),
			SpringDuration: cfg.Slider.SpringDuration,
		},
		confirmations,
		logger.Component(log, "slider"),
	)

	// OpenAPI document for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		if err := httpHandler.SetSwaggerSpec(specBytes); err != nil {
			log.Warn().Err(err).Msg("OpenAPI spec is invalid, Swagger UI will be unavailable")
		} else {
			log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
		}
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		SessionSvc:     sessionSvc,
		QRSvc:          service.NewPNGQRService(),
		ReleaseCache:   releaseCache,
		RateLimitStore: rateLimitStore,
		HealthCheckers: checkers,
		Metrics:        rec,
		MetricsPath:    cfg.Metrics.Path,
		Logger:         logger.Component(log, "http"),
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// newSeedSource picks the restaurant source named in config. The returned
// health checker is nil unless the source has a backing service; the close
// func releases any connection it opened.
func newSeedSource(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.RestaurantSource, ports.HealthChecker, func(), error) {
	noop := func() {}

	switch cfg.Seed.Source {
	case config.SeedSourceBuiltin, "":
		return seed.NewBuiltin(), nil, noop, nil

	case config.SeedSourceFile:
		if cfg.Seed.File == "" {
			return nil, nil, noop, fmt.Errorf("seed.file is required for the file source")
		}
		src := seed.NewFileSource(cfg.Seed.File)
		// Fail fast on a broken file rather than on the first session.
		if _, err := src.Load(ctx); err != nil {
			return nil, nil, noop, err
		}
		return src, nil, noop, nil

	case config.SeedSourcePostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, nil, noop, err
		}
		log.Info().Msg("PostgreSQL connected")
		return pgStorage.NewRestaurantSource(pool), pgStorage.NewHealthCheck(pool), pool.Close, nil

	default:
		return nil, nil, noop, fmt.Errorf("unknown seed source %q", cfg.Seed.Source)
	}
}
