package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/listing"
)

const defaultPageSize = 8

func listProductsHandler(view *listing.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria, err := criteriaFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		page := listing.Page{
			Number: intQuery(c, "page", 1),
			Size:   intQuery(c, "pageSize", defaultPageSize),
		}
		if page.Size < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pageSize must be positive"})
			return
		}

		res := view.Apply(criteria, listing.ParseSortKey(c.Query("sort")), page)
		c.JSON(http.StatusOK, gin.H{
			"results":    res.Products,
			"total":      res.Total,
			"page":       res.Page,
			"pageSize":   res.PageSize,
			"totalPages": res.TotalPages,
		})
	}
}

func searchProductsHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		results := cat.Search(c.Query("q"))
		if results == nil {
			results = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"results": results, "total": len(results)})
	}
}

func getProductHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := cat.Get(c.Param("productId"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// filterMetadataHandler describes the filterable dimensions of the catalog
// so clients can build their controls.
func filterMetadataHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		min, max := cat.PriceRange()
		categories := cat.Categories()
		if categories == nil {
			categories = []string{}
		}
		c.JSON(http.StatusOK, gin.H{
			"categories": categories,
			"priceRange": gin.H{
				"minCents": min,
				"maxCents": max,
				"min":      domain.FormatPriceCents(min),
				"max":      domain.FormatPriceCents(max),
			},
			"sortKeys": []listing.SortKey{
				listing.SortNameAsc, listing.SortNameDesc,
				listing.SortPriceAsc, listing.SortPriceDesc,
				listing.SortRatingAsc, listing.SortRatingDesc,
			},
		})
	}
}

// criteriaFromQuery reads priceMin/priceMax as dollar amounts (matching
// the display currency) and converts them to cents. priceMax defaults to
// an effectively unbounded value.
func criteriaFromQuery(c *gin.Context) (listing.Criteria, error) {
	criteria := listing.Criteria{
		Category: c.Query("category"),
		PriceMax: 1 << 40,
	}

	if raw := c.Query("priceMin"); raw != "" {
		cents, err := domain.ParsePriceCents(raw)
		if err != nil {
			return listing.Criteria{}, errors.New("invalid priceMin")
		}
		criteria.PriceMin = cents
	}
	if raw := c.Query("priceMax"); raw != "" {
		cents, err := domain.ParsePriceCents(raw)
		if err != nil {
			return listing.Criteria{}, errors.New("invalid priceMax")
		}
		criteria.PriceMax = cents
	}
	if raw := c.Query("minRating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return listing.Criteria{}, errors.New("invalid minRating")
		}
		criteria.MinRating = rating
	}

	return criteria, nil
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
