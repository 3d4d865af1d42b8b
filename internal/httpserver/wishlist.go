package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	wishlistsvc "storefront/internal/service/wishlist"
)

type addWishlistItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func wishlistResponse(svc *wishlistsvc.Service) gin.H {
	return gin.H{
		"items": svc.Items(),
		"count": svc.Count(),
	}
}

func getWishlistHandler(svc *wishlistsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, wishlistResponse(svc))
	}
}

func addWishlistItemHandler(svc *wishlistsvc.Service, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addWishlistItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}

		product, err := cat.Get(req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		added, err := svc.Add(c.Request.Context(), *product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
			return
		}

		status := http.StatusCreated
		if !added {
			status = http.StatusOK
		}
		body := wishlistResponse(svc)
		body["added"] = added
		c.JSON(status, body)
	}
}

func removeWishlistItemHandler(svc *wishlistsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Remove(c.Request.Context(), c.Param("productId")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item"})
			return
		}
		c.JSON(http.StatusOK, wishlistResponse(svc))
	}
}

func clearWishlistHandler(svc *wishlistsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear wishlist"})
			return
		}
		c.JSON(http.StatusOK, wishlistResponse(svc))
	}
}
