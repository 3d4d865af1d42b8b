package listing

import (
	"sort"

	"storefront/internal/domain"
)

// Criteria is the filter stage input. Category "" matches everything;
// price bounds are inclusive cents; a product without a rating counts
// as rating 0.
type Criteria struct {
	Category  string
	PriceMin  int64
	PriceMax  int64
	MinRating float64
}

// SortKey selects the comparator for the sort stage.
type SortKey string

const (
	SortNameAsc    SortKey = "name-asc"
	SortNameDesc   SortKey = "name-desc"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingAsc  SortKey = "rating-asc"
	SortRatingDesc SortKey = "rating-desc"
)

// ParseSortKey maps a request value onto a known key, defaulting to
// name-asc for blank or unknown values.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc, SortRatingAsc, SortRatingDesc:
		return SortKey(raw)
	default:
		return SortNameAsc
	}
}

// Page is a 1-indexed page request.
type Page struct {
	Number int
	Size   int
}

// Filter retains products matching all criteria, preserving input order.
func Filter(products []domain.Product, c Criteria) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		if p.PriceCents < c.PriceMin || p.PriceCents > c.PriceMax {
			continue
		}
		if p.Rating < c.MinRating {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort orders a copy of products by the given key. Ties keep their
// filter-stage relative order.
func Sort(products []domain.Product, key SortKey) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)

	var less func(a, b domain.Product) bool
	switch key {
	case SortNameDesc:
		less = func(a, b domain.Product) bool { return a.Name > b.Name }
	case SortPriceAsc:
		less = func(a, b domain.Product) bool { return a.PriceCents < b.PriceCents }
	case SortPriceDesc:
		less = func(a, b domain.Product) bool { return a.PriceCents > b.PriceCents }
	case SortRatingAsc:
		less = func(a, b domain.Product) bool { return a.Rating < b.Rating }
	case SortRatingDesc:
		less = func(a, b domain.Product) bool { return a.Rating > b.Rating }
	default: // SortNameAsc
		less = func(a, b domain.Product) bool { return a.Name < b.Name }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Paginate returns the half-open slice [(p-1)*s, (p-1)*s+s) clamped to the
// available length. Out-of-range pages yield an empty slice.
func Paginate(products []domain.Product, page Page) []domain.Product {
	if page.Number < 1 || page.Size < 1 {
		return []domain.Product{}
	}
	start := (page.Number - 1) * page.Size
	if start >= len(products) {
		return []domain.Product{}
	}
	end := start + page.Size
	if end > len(products) {
		end = len(products)
	}
	out := make([]domain.Product, end-start)
	copy(out, products[start:end])
	return out
}
