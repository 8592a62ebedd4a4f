package cartControllers

import (
	"net/http"

	"github.com/G9140/E-commerce-website/models"
	"github.com/G9140/E-commerce-website/state"
	"github.com/gin-gonic/gin"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type QuantityInput struct {
	Quantity int `json:"quantity"`
}

func requestUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	userID, _ := userIDVal.(string)
	if !exists || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// GET /user/cart
func GetUserCart(cart *state.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cart.Items(userID))
	}
}

// POST /user/cart
// Adds one unit of the product, merging with an existing line.
func AddCartItem(cart *state.CartStore, catalog *state.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, found := catalog.GetByID(input.ProductID)
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		if product.Stock < 1 {
			c.JSON(http.StatusConflict, gin.H{"error": "Product is out of stock"})
			return
		}

		cart.AddToCart(userID, models.Snapshot(product))
		c.JSON(http.StatusOK, cart.Items(userID))
	}
}

// PUT /user/cart/:product_id
// A quantity of zero or less removes the line.
func UpdateCartQuantity(cart *state.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}
		productID := c.Param("product_id")

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart.UpdateQuantity(userID, productID, input.Quantity)
		c.JSON(http.StatusOK, cart.Items(userID))
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(cart *state.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}
		cart.RemoveFromCart(userID, c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(cart *state.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}
		cart.ClearCart(userID)
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart/summary
func GetCartSummary(cart *state.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"total_items": cart.TotalItems(userID),
			"total_price": cart.TotalPrice(userID),
		})
	}
}
