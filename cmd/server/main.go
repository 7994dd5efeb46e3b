package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redisv9 "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"market_movers/internal/app/di"
	"market_movers/internal/app/router"
	"market_movers/internal/config"
	markethandler "market_movers/internal/feature/market/transport/handler"
	symbolentity "market_movers/internal/feature/symbollist/domain/entity"
	symbollisthandler "market_movers/internal/feature/symbollist/transport/handler"
	symbollistusecase "market_movers/internal/feature/symbollist/usecase"
	infradb "market_movers/internal/platform/db"
	platformhandler "market_movers/internal/platform/http/handler"
	"market_movers/internal/platform/logger"
	infraredis "market_movers/internal/platform/redis"
)

func main() {
	envFile := flag.String("env", ".env", "optional .env file")
	flag.Parse()

	if err := run(*envFile); err != nil {
		logger.L().Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checks := map[string]platformhandler.Check{}

	// Redis（未設定または接続失敗ならキャッシュなしで起動）
	var rdb *redisv9.Client
	if cfg.Redis.Host != "" {
		rdb, err = infraredis.NewRedisClient(ctx, infraredis.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
		})
		if err != nil {
			logger.L().Warn().Err(err).Msg("redis unavailable, running without cache")
			rdb = nil
		} else {
			defer func() {
				if err := rdb.Close(); err != nil {
					logger.L().Error().Err(err).Msg("failed to close redis client")
				}
			}()
			checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		}
	}

	// DB（銘柄表）
	var db *gorm.DB
	if cfg.DB.Driver != infradb.DriverNone {
		db, err = infradb.OpenDB(infradb.Config{
			Driver:        cfg.DB.Driver,
			DSN:           cfg.DB.DSN,
			RunMigrations: cfg.DB.RunMigrations,
		}, &symbolentity.Symbol{})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer func() { _ = sqlDB.Close() }()
		checks["db"] = sqlDB.PingContext
	}

	// Repository / Usecase
	symbolRepo, err := di.NewSymbolRepository(ctx, db)
	if err != nil {
		return err
	}
	symbolUC := symbollistusecase.NewSymbolUsecase(symbolRepo)
	names, err := symbolUC.NameDirectory(ctx)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	client := di.NewAlphaVantageClient(cfg, reg)
	marketSvc := di.NewMarketService(cfg, client, names, rdb)

	// Handler / Router
	engine := router.NewRouter(router.Deps{
		Market:         markethandler.NewMarketHandler(marketSvc),
		Symbols:        symbollisthandler.NewSymbolHandler(symbolUC),
		Health:         platformhandler.NewHealth(checks),
		Metrics:        promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		JWTSecret:      cfg.JWT.Secret,
		RequestTimeout: cfg.RequestBudget(),
	})
	if cfg.JWT.Secret == "" {
		logger.L().Warn().Msg("JWT_SECRET is not set, API routes are unauthenticated")
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.WriteTimeout(),
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.L().Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.L().Info().Msg("server exited gracefully")
	return nil
}
