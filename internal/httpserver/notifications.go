package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/notify"
)

func listNotificationsHandler(hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"notifications": hub.Active()})
	}
}

func dismissNotificationHandler(hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		hub.Dismiss(c.Param("id"))
		c.Status(http.StatusNoContent)
	}
}
