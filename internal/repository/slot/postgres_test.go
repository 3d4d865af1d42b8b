package slot

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
	"storefront/internal/migrate"
)

func TestPostgres_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool)

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get missing: expected ErrNotFound, got %v", err)
	}

	if err := repo.Set(ctx, "nike-wishlist", `[{"id":"p2"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, err := repo.Get(ctx, "nike-wishlist")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != `[{"id":"p2"}]` {
		t.Fatalf("unexpected value %q", value)
	}

	if err := repo.Set(ctx, "nike-wishlist", `[]`); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	value, err = repo.Get(ctx, "nike-wishlist")
	if err != nil {
		t.Fatalf("Get after overwrite: %v", err)
	}
	if value != `[]` {
		t.Fatalf("overwrite lost: %q", value)
	}

	if err := repo.Delete(ctx, "nike-wishlist"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, "nike-wishlist"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get deleted: expected ErrNotFound, got %v", err)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE slots`); err != nil {
		t.Fatalf("truncate slots: %v", err)
	}
}
