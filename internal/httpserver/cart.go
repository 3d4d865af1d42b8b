package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	cartsvc "storefront/internal/service/cart"
)

type addLineItemRequest struct {
	ProductID     string `json:"productId" binding:"required"`
	SelectedColor string `json:"selectedColor"`
	SelectedSize  string `json:"selectedSize"`
}

type updateLineItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func cartResponse(svc *cartsvc.Service) gin.H {
	items := svc.Items()
	totalCents := svc.TotalPriceCents()
	return gin.H{
		"lineItems":       items,
		"isOpen":          svc.IsOpen(),
		"totalItems":      svc.TotalItems(),
		"totalPriceCents": totalCents,
		"totalPrice":      domain.FormatPriceCents(totalCents),
	}
}

func getCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartResponse(svc))
	}
}

func addLineItemHandler(svc *cartsvc.Service, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addLineItemRequest
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

		if err := svc.Add(c.Request.Context(), *product, req.SelectedColor, req.SelectedSize); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
			return
		}
		c.JSON(http.StatusCreated, cartResponse(svc))
	}
}

func updateLineItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateLineItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}

		if err := svc.UpdateQuantity(c.Request.Context(), c.Param("lineId"), *req.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(svc))
	}
}

func removeLineItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Remove(c.Request.Context(), c.Param("lineId")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(svc))
	}
}

func clearCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(svc))
	}
}

func toggleCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"isOpen": svc.Toggle()})
	}
}
