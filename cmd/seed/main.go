package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/notify"
	slotrepo "storefront/internal/repository/slot"
	cartsvc "storefront/internal/service/cart"
	wishlistsvc "storefront/internal/service/wishlist"
	"storefront/internal/storage"
)

// Seeds a demo cart and wishlist into the configured slot backend for
// manual testing.
func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if cfg.StoreBackend == config.BackendMemory {
		logger.Fatal("seeding the memory backend has no effect; set STORE_BACKEND to postgres or redis")
	}

	ctx := context.Background()

	var pool *pgxpool.Pool
	var slots slotrepo.Repository
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatal("connect db", zap.Error(err))
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
	}

	cat, err := catalog.Default()
	if err != nil {
		logger.Fatal("load catalog", zap.Error(err))
	}

	codec := storage.NewCodec(slots, logger)
	cart := cartsvc.New(ctx, codec, cfg.CartSlotKey, notify.Noop{}, logger)
	wishlist := wishlistsvc.New(ctx, codec, cfg.WishlistSlotKey, notify.Noop{}, logger)

	products := cat.List()
	if len(products) < 2 {
		logger.Fatal("catalog too small to seed")
	}

	first := products[0]
	color, size := "", ""
	if len(first.Colors) > 0 {
		color = first.Colors[0].ID
	}
	if len(first.Sizes) > 0 {
		size = first.Sizes[0].Value
	}
	if err := cart.Add(ctx, first, color, size); err != nil {
		logger.Fatal("seed cart", zap.Error(err))
	}
	if err := cart.Add(ctx, first, color, size); err != nil {
		logger.Fatal("seed cart", zap.Error(err))
	}

	if _, err := wishlist.Add(ctx, products[1]); err != nil {
		logger.Fatal("seed wishlist", zap.Error(err))
	}

	logger.Info("seeded demo state",
		zap.Int("cartItems", cart.TotalItems()),
		zap.Int("wishlistItems", wishlist.Count()),
	)
}
