package routes

import (
	adminController "github.com/G9140/E-commerce-website/controllers/admin"
	productcontroller "github.com/G9140/E-commerce-website/controllers/product"
	"github.com/G9140/E-commerce-website/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires the admin role.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Dashboard ───────────
		adminGroup.GET("/stats", adminController.GetStats(d.Catalog))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(d.Catalog, d.Hub))
			productAdmin.GET("", productcontroller.GetProducts(d.Catalog))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(d.Catalog))
		}
	}
}
