package routes

import (
	authControllers "github.com/G9140/E-commerce-website/controllers/auth"
	cartControllers "github.com/G9140/E-commerce-website/controllers/cart"
	orderControllers "github.com/G9140/E-commerce-website/controllers/order"
	productControllers "github.com/G9140/E-commerce-website/controllers/product"
	"github.com/G9140/E-commerce-website/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", authControllers.Me(d.Auth)) // GET /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(d.Cart))                      // GET /user/cart
			cartGroup.GET("/summary", cartControllers.GetCartSummary(d.Cart))            // GET /user/cart/summary
			cartGroup.POST("/", cartControllers.AddCartItem(d.Cart, d.Catalog))          // POST /user/cart
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartQuantity(d.Cart))    // PUT /user/cart/:product_id
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(d.Cart))     // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(d.Cart))                 // DELETE /user/cart
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productControllers.GetProducts(d.Catalog))                             // GET /user/products
		userGroup.GET("/products/search", productControllers.SearchProducts(d.Catalog))                   // GET /user/products/search?q=
		userGroup.GET("/products/category/:category", productControllers.GetProductsByCategory(d.Catalog)) // GET /user/products/category/:category
		userGroup.GET("/products/:id", productControllers.GetProductByID(d.Catalog))                      // GET /user/products/:id

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.Checkout(orderControllers.Deps{
			Cart:    d.Cart,
			KV:      d.KV,
			Hub:     d.Hub,
			Latency: d.OrderLatency,
		})) // POST /user/checkout
		userGroup.GET("/orders", orderControllers.GetUserOrders(d.KV)) // GET /user/orders
	}
}
