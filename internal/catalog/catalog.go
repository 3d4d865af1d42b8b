package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"storefront/internal/domain"
)

//go:embed products.json
var fixtureJSON []byte

// Catalog is the static, read-only product list available at startup.
type Catalog struct {
	products []domain.Product
	byID     map[string]domain.Product
}

// New builds a catalog from the given products, normalizing prices to
// cents. Duplicate ids and unparseable prices are fixture defects and
// rejected outright.
func New(products []domain.Product) (*Catalog, error) {
	byID := make(map[string]domain.Product, len(products))
	normalized := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q has no id", p.Name)
		}
		if _, ok := byID[p.ID]; ok {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.PriceCents == 0 {
			cents, err := domain.ParsePriceCents(p.Price)
			if err != nil {
				return nil, fmt.Errorf("product %q: %w", p.ID, err)
			}
			p.PriceCents = cents
		}
		byID[p.ID] = p
		normalized = append(normalized, p)
	}
	return &Catalog{products: normalized, byID: byID}, nil
}

// Default loads the embedded fixture catalog.
func Default() (*Catalog, error) {
	var products []domain.Product
	if err := json.Unmarshal(fixtureJSON, &products); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return New(products)
}

// List returns all products in fixture order.
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (*domain.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// Len reports the catalog size.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Categories returns the distinct non-empty categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// PriceRange returns the lowest and highest product price in cents.
// An empty catalog reports (0, 0).
func (c *Catalog) PriceRange() (min, max int64) {
	for i, p := range c.products {
		if i == 0 || p.PriceCents < min {
			min = p.PriceCents
		}
		if p.PriceCents > max {
			max = p.PriceCents
		}
	}
	return min, max
}

// Search returns products whose name or display price contains the term,
// case-insensitively. A blank term matches nothing.
func (c *Catalog) Search(term string) []domain.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var out []domain.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Price), term) {
			out = append(out, p)
		}
	}
	return out
}
