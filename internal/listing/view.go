package listing

import (
	"sync"

	"storefront/internal/domain"
)

// View derives a listing from a fixed source catalog. The filtered and
// sorted sequence is memoized and recomputed only when the criteria or
// sort key change; changing criteria, sort key, or page size resets the
// page to 1 so a stale page number never outlives a shrunk result set.
type View struct {
	mu       sync.Mutex
	source   []domain.Product
	criteria Criteria
	sortKey  SortKey
	page     Page
	derived  []domain.Product
	stale    bool
}

// Result is one derived listing page.
type Result struct {
	Products   []domain.Product
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// NewView builds a view over the source products with everything visible,
// sorted name-asc, on page 1.
func NewView(source []domain.Product, defaultPageSize int) *View {
	_, max := priceBounds(source)
	return &View{
		source:   source,
		criteria: Criteria{PriceMax: max},
		sortKey:  SortNameAsc,
		page:     Page{Number: 1, Size: defaultPageSize},
		stale:    true,
	}
}

// Apply sets all inputs at once and returns the derived page. The page
// number is honored only when criteria, sort key, and page size are
// unchanged from the previous call.
func (v *View) Apply(c Criteria, key SortKey, page Page) Result {
	v.mu.Lock()
	defer v.mu.Unlock()

	if c != v.criteria || key != v.sortKey {
		v.criteria = c
		v.sortKey = key
		v.page = Page{Number: 1, Size: page.Size}
		v.stale = true
	} else if page.Size != v.page.Size {
		v.page = Page{Number: 1, Size: page.Size}
	} else {
		v.page.Number = page.Number
	}

	return v.result()
}

// Current re-derives nothing unless inputs changed since the last call.
func (v *View) Current() Result {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.result()
}

func (v *View) result() Result {
	if v.stale {
		v.derived = Sort(Filter(v.source, v.criteria), v.sortKey)
		v.stale = false
	}

	total := len(v.derived)
	totalPages := 0
	if v.page.Size > 0 {
		totalPages = (total + v.page.Size - 1) / v.page.Size
	}

	return Result{
		Products:   Paginate(v.derived, v.page),
		Total:      total,
		Page:       v.page.Number,
		PageSize:   v.page.Size,
		TotalPages: totalPages,
	}
}

func priceBounds(products []domain.Product) (min, max int64) {
	for i, p := range products {
		if i == 0 || p.PriceCents < min {
			min = p.PriceCents
		}
		if p.PriceCents > max {
			max = p.PriceCents
		}
	}
	return min, max
}
