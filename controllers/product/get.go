package productcontroller

import (
	"net/http"

	"github.com/G9140/E-commerce-website/state"
	"github.com/gin-gonic/gin"
)

// GetProducts returns the full catalog.
// GET /user/products
func GetProducts(catalog *state.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.All())
	}
}

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(catalog *state.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, ok := catalog.GetByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// SearchProducts matches the query against title, description and
// category, ignoring case.
// GET /user/products/search?q=
func SearchProducts(catalog *state.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
			return
		}
		c.JSON(http.StatusOK, catalog.Search(query))
	}
}

// GetProductsByCategory returns every product in a category.
// GET /user/products/category/:category
func GetProductsByCategory(catalog *state.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")
		if category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required"})
			return
		}
		c.JSON(http.StatusOK, catalog.GetByCategory(category))
	}
}
