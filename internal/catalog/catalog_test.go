package catalog

import (
	"errors"
	"testing"

	"storefront/internal/domain"
)

func TestDefault_LoadsFixture(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if cat.Len() < 4 {
		t.Fatalf("fixture too small: %d products", cat.Len())
	}
	for _, p := range cat.List() {
		if p.PriceCents <= 0 {
			t.Fatalf("product %q has no normalized price", p.ID)
		}
	}
}

func TestGet(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	p, err := cat.Get("nike-air-jordan-01")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Name != "Nike Air Jordan-01" || p.PriceCents != 20020 {
		t.Fatalf("unexpected product %+v", p)
	}

	if _, err := cat.Get("missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNew_RejectsDuplicateID(t *testing.T) {
	_, err := New([]domain.Product{
		{ID: "p1", Name: "A", Price: "$10.00"},
		{ID: "p1", Name: "B", Price: "$20.00"},
	})
	if err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestNew_RejectsBadPrice(t *testing.T) {
	_, err := New([]domain.Product{{ID: "p1", Name: "A", Price: "free"}})
	if err == nil {
		t.Fatalf("expected price error")
	}
}

func TestCategories(t *testing.T) {
	cat, err := New([]domain.Product{
		{ID: "p1", Price: "$1.00", Category: "running"},
		{ID: "p2", Price: "$1.00", Category: "lifestyle"},
		{ID: "p3", Price: "$1.00", Category: "running"},
		{ID: "p4", Price: "$1.00"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := cat.Categories()
	if len(got) != 2 || got[0] != "lifestyle" || got[1] != "running" {
		t.Fatalf("unexpected categories %v", got)
	}
}

func TestPriceRange(t *testing.T) {
	cat, err := New([]domain.Product{
		{ID: "p1", Price: "$10.00"},
		{ID: "p2", Price: "$5.50"},
		{ID: "p3", Price: "$99.99"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	min, max := cat.PriceRange()
	if min != 550 || max != 9999 {
		t.Fatalf("PriceRange = (%d, %d)", min, max)
	}
}

func TestSearch(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	if got := cat.Search("jordan-10"); len(got) != 1 || got[0].ID != "nike-air-jordan-10" {
		t.Fatalf("unexpected name match %+v", got)
	}
	if got := cat.Search("JORDAN"); len(got) != 4 {
		t.Fatalf("expected 4 case-insensitive matches, got %d", len(got))
	}
	// price text is searchable too, as in the original search box
	if got := cat.Search("$200.20"); len(got) != 1 {
		t.Fatalf("expected price match, got %+v", got)
	}
	if got := cat.Search("   "); got != nil {
		t.Fatalf("blank term should match nothing, got %+v", got)
	}
}
