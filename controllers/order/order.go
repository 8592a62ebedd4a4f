package orderControllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/G9140/E-commerce-website/kvstore"
	"github.com/G9140/E-commerce-website/models"
	"github.com/G9140/E-commerce-website/notify"
	"github.com/G9140/E-commerce-website/state"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// -------- Request Structs --------

type CheckoutRequest struct {
	ShippingInfo models.ShippingInfo `json:"shipping_info" binding:"required"`
	PaymentInfo  models.PaymentInfo  `json:"payment_info" binding:"required"`
}

// Deps bundles what order placement touches: the cart being drained,
// the store the order record lands in and the notification sink.
type Deps struct {
	Cart    *state.CartStore
	KV      kvstore.Store
	Hub     *notify.Hub
	Latency time.Duration
}

// -------- Helpers --------

// Totals derives the charge breakdown from a cart subtotal. Orders over
// $100 ship free; exactly $100 does not.
func Totals(subtotal float64) (shipping, tax, total float64) {
	shipping = 9.99
	if subtotal > 100 {
		shipping = 0
	}
	tax = 0.08 * subtotal
	total = subtotal + shipping + tax
	return shipping, tax, total
}

// Generate unique order reference
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func validatePayment(p models.PaymentInfo) error {
	if len(digits(p.CardNumber)) < 16 {
		return errors.New("Please enter a valid card number")
	}
	if len(p.ExpiryDate) < 5 {
		return errors.New("Please enter a valid expiry date")
	}
	if len(p.CVV) < 3 {
		return errors.New("Please enter a valid CVV")
	}
	return nil
}

func ordersKey(userID string) string { return "orders_" + userID }

// -------- Core Logic --------

// PlaceOrder runs the whole checkout: validates the payment details,
// prices the cart, records the order with only the card's last four
// digits, then empties the cart. No stock is reserved or decremented
// anywhere.
func PlaceOrder(d Deps, userID string, req CheckoutRequest) (*models.Order, error) {
	items := d.Cart.Items(userID)
	if len(items) == 0 {
		return nil, errors.New("cart is empty")
	}

	if err := validatePayment(req.PaymentInfo); err != nil {
		return nil, err
	}

	// Simulated payment processing; there is no gateway behind this.
	if d.Latency > 0 {
		time.Sleep(d.Latency)
	}

	subtotal := d.Cart.TotalPrice(userID)
	shipping, tax, total := Totals(subtotal)

	cardDigits := digits(req.PaymentInfo.CardNumber)
	order := models.Order{
		ID:           generateOrderRef(),
		UserID:       userID,
		Items:        items,
		ShippingInfo: req.ShippingInfo,
		CardLast4:    cardDigits[len(cardDigits)-4:],
		Subtotal:     subtotal,
		Shipping:     shipping,
		Tax:          tax,
		Total:        total,
		Status:       "confirmed",
		OrderDate:    time.Now().UTC(),
	}

	history := loadOrders(d.KV, userID)
	history = append(history, order)
	data, err := json.Marshal(history)
	if err != nil {
		return nil, err
	}
	if err := d.KV.Set(ordersKey(userID), data); err != nil {
		return nil, err
	}

	d.Cart.ClearCart(userID)
	log.Printf("🧾 Order %s placed by %s: $%.2f", order.ID, userID, order.Total)
	return &order, nil
}

// loadOrders reads a user's order history; a missing or unreadable
// value is an empty history.
func loadOrders(kv kvstore.Store, userID string) []models.Order {
	data, err := kv.Get(ordersKey(userID))
	if err != nil {
		return nil
	}
	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil
	}
	return orders
}

// -------- Handlers --------

func requestUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	userID, _ := userIDVal.(string)
	if !exists || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// POST /user/checkout
func Checkout(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			d.Hub.Error("Please fill in all checkout fields")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := PlaceOrder(d, userID, req)
		if err != nil {
			d.Hub.Error(err.Error())
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		d.Hub.Success("Order placed successfully!")
		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetUserOrders(kv kvstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}
		orders := loadOrders(kv, userID)
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}
