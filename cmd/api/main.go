package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/httpserver"
	"storefront/internal/listing"
	"storefront/internal/notify"
	slotrepo "storefront/internal/repository/slot"
	cartsvc "storefront/internal/service/cart"
	wishlistsvc "storefront/internal/service/wishlist"
	"storefront/internal/storage"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()

	var pool *pgxpool.Pool
	var slots slotrepo.Repository
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatal("connect to db", zap.Error(err))
		}
		defer pool.Close()
		slots = slotrepo.NewPostgres(pool)
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatal("connect to redis", zap.Error(err))
		}
		defer client.Close()
		slots = slotrepo.NewRedis(client)
	default:
		slots = slotrepo.NewMemory()
	}
	logger.Info("slot backend ready", zap.String("backend", cfg.StoreBackend))

	cat, err := catalog.Default()
	if err != nil {
		logger.Fatal("load catalog", zap.Error(err))
	}

	hub := notify.NewHub(cfg.NotifyTTL, logger)
	codec := storage.NewCodec(slots, logger)
	cartService := cartsvc.New(ctx, codec, cfg.CartSlotKey, hub, logger)
	wishlistService := wishlistsvc.New(ctx, codec, cfg.WishlistSlotKey, hub, logger)
	view := listing.NewView(cat.List(), 8)

	srv := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		Catalog:  cat,
		Listing:  view,
		Cart:     cartService,
		Wishlist: wishlistService,
		Hub:      hub,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}
