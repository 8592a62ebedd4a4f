package adminController

import (
	"net/http"

	"github.com/G9140/E-commerce-website/state"
	"github.com/gin-gonic/gin"
)

// GetStats feeds the dashboard tiles. Product count is live; the other
// figures are the demo constants the dashboard has always shown, since
// there is no real order or user population behind this store.
// GET /admin/stats
func GetStats(catalog *state.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"total_products": catalog.Count(),
			"total_orders":   156,
			"total_revenue":  45389.50,
			"total_users":    1247,
		})
	}
}
