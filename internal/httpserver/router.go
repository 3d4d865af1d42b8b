package httpserver

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// buildRouter wires routes for the storefront API.
func buildRouter(logger *zap.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api/v1")
	{
		api.GET("/products", listProductsHandler(deps.Listing))
		api.GET("/products/search", searchProductsHandler(deps.Catalog))
		api.GET("/products/:productId", getProductHandler(deps.Catalog))
		api.GET("/filters", filterMetadataHandler(deps.Catalog))

		api.GET("/cart", getCartHandler(deps.Cart))
		api.POST("/cart/line-items", addLineItemHandler(deps.Cart, deps.Catalog))
		api.PATCH("/cart/line-items/:lineId", updateLineItemHandler(deps.Cart))
		api.DELETE("/cart/line-items/:lineId", removeLineItemHandler(deps.Cart))
		api.DELETE("/cart", clearCartHandler(deps.Cart))
		api.POST("/cart/toggle", toggleCartHandler(deps.Cart))

		api.GET("/wishlist", getWishlistHandler(deps.Wishlist))
		api.POST("/wishlist/items", addWishlistItemHandler(deps.Wishlist, deps.Catalog))
		api.DELETE("/wishlist/items/:productId", removeWishlistItemHandler(deps.Wishlist))
		api.DELETE("/wishlist", clearWishlistHandler(deps.Wishlist))

		api.GET("/notifications", listNotificationsHandler(deps.Hub))
		api.DELETE("/notifications/:id", dismissNotificationHandler(deps.Hub))
	}

	return router
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
