package listing

import (
	"testing"
)

func TestView_PageResetOnCriteriaChange(t *testing.T) {
	v := NewView(fixture(), 2)
	all := Criteria{PriceMax: 100000}

	res := v.Apply(all, SortNameAsc, Page{Number: 2, Size: 2})
	if res.Page != 1 {
		t.Fatalf("first apply changed criteria, expected page reset to 1, got %d", res.Page)
	}

	res = v.Apply(all, SortNameAsc, Page{Number: 2, Size: 2})
	if res.Page != 2 || len(res.Products) != 2 {
		t.Fatalf("unchanged inputs should honor page 2, got page %d with %d items", res.Page, len(res.Products))
	}

	res = v.Apply(Criteria{Category: "running", PriceMax: 100000}, SortNameAsc, Page{Number: 2, Size: 2})
	if res.Page != 1 {
		t.Fatalf("criteria change should reset to page 1, got %d", res.Page)
	}
	if res.Total != 2 {
		t.Fatalf("expected 2 running products, got %d", res.Total)
	}
}

func TestView_PageResetOnSortChange(t *testing.T) {
	v := NewView(fixture(), 2)
	all := Criteria{PriceMax: 100000}

	v.Apply(all, SortNameAsc, Page{Number: 1, Size: 2})
	v.Apply(all, SortNameAsc, Page{Number: 3, Size: 2})

	res := v.Apply(all, SortPriceDesc, Page{Number: 3, Size: 2})
	if res.Page != 1 {
		t.Fatalf("sort change should reset to page 1, got %d", res.Page)
	}
	if res.Products[0].ID != "p2" {
		t.Fatalf("price-desc should lead with the priciest, got %s", res.Products[0].ID)
	}
}

func TestView_PageResetOnSizeChange(t *testing.T) {
	v := NewView(fixture(), 2)
	all := Criteria{PriceMax: 100000}

	v.Apply(all, SortNameAsc, Page{Number: 1, Size: 2})
	v.Apply(all, SortNameAsc, Page{Number: 2, Size: 2})

	res := v.Apply(all, SortNameAsc, Page{Number: 2, Size: 4})
	if res.Page != 1 || res.PageSize != 4 {
		t.Fatalf("size change should reset to page 1, got page %d size %d", res.Page, res.PageSize)
	}
}

func TestView_TotalsAndPages(t *testing.T) {
	v := NewView(fixture(), 2)
	res := v.Apply(Criteria{PriceMax: 100000}, SortNameAsc, Page{Number: 1, Size: 2})
	if res.Total != 5 || res.TotalPages != 3 {
		t.Fatalf("total=%d pages=%d", res.Total, res.TotalPages)
	}

	res = v.Apply(Criteria{Category: "nope", PriceMax: 100000}, SortNameAsc, Page{Number: 1, Size: 2})
	if res.Total != 0 || res.TotalPages != 0 || len(res.Products) != 0 {
		t.Fatalf("empty result expected, got %+v", res)
	}
}

func TestView_CurrentIsStable(t *testing.T) {
	v := NewView(fixture(), 8)
	first := v.Current()
	second := v.Current()
	if first.Total != second.Total || len(first.Products) != len(second.Products) {
		t.Fatalf("Current diverged between calls")
	}
	for i := range first.Products {
		if first.Products[i].ID != second.Products[i].ID {
			t.Fatalf("Current diverged at index %d", i)
		}
	}
}
