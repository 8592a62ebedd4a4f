package productcontroller

import (
	"net/http"

	"github.com/G9140/E-commerce-website/models"
	"github.com/G9140/E-commerce-website/notify"
	"github.com/G9140/E-commerce-website/state"
	"github.com/gin-gonic/gin"
)

// CreateProduct appends a new product to the catalog.
// POST /admin/products
func CreateProduct(catalog *state.CatalogStore, hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			hub.Error("Please fill in all required fields")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := catalog.Add(input)
		if !ok {
			hub.Error("Failed to add product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
			return
		}

		hub.Success("Product added successfully!")
		c.JSON(http.StatusCreated, product)
	}
}
