package slot

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
)

func TestMemory_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get missing: expected ErrNotFound, got %v", err)
	}

	if err := repo.Set(ctx, "nike-cart", `[{"id":"p1"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, err := repo.Get(ctx, "nike-cart")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != `[{"id":"p1"}]` {
		t.Fatalf("unexpected value %q", value)
	}

	if err := repo.Set(ctx, "nike-cart", `[]`); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	value, err = repo.Get(ctx, "nike-cart")
	if err != nil {
		t.Fatalf("Get after overwrite: %v", err)
	}
	if value != `[]` {
		t.Fatalf("overwrite lost: %q", value)
	}

	if err := repo.Delete(ctx, "nike-cart"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, "nike-cart"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get deleted: expected ErrNotFound, got %v", err)
	}
}
