package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/G9140/E-commerce-website/kvstore"
	"github.com/G9140/E-commerce-website/models"
	"github.com/G9140/E-commerce-website/notify"
	"github.com/G9140/E-commerce-website/state"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "routes-test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, Deps) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	gin.SetMode(gin.TestMode)

	kv := kvstore.NewMemory()
	auth := state.NewAuthStore(kv, testSecret, 0)
	catalog := state.NewCatalogStore(0)
	catalog.Load()
	cart := state.NewCartStore(kv)
	auth.Subscribe(cart.SyncIdentity)

	d := Deps{
		Auth:    auth,
		Catalog: catalog,
		Cart:    cart,
		KV:      kv,
		Hub:     notify.NewHub(notify.DefaultTTL),
	}
	r := gin.New()
	SetupRoutes(r, d)
	return r, d
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func login(t *testing.T, r *gin.Engine, email string) sessionResponse {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    email,
		"password": "pw123456",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}

func TestLogin_RolesFromEmail(t *testing.T) {
	r, _ := newTestRouter(t)

	admin := login(t, r, "admin@x.com")
	assert.Equal(t, models.RoleAdmin, admin.User.Role)

	jane := login(t, r, "jane@x.com")
	assert.Equal(t, models.RoleUser, jane.User.Role)
}

func TestUserRoutes_RequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/user/cart/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/user/cart/", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutes_RejectNonAdmin(t *testing.T) {
	r, _ := newTestRouter(t)

	jane := login(t, r, "jane@x.com")
	w := doJSON(r, http.MethodGet, "/admin/stats", jane.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := login(t, r, "admin@x.com")
	w = doJSON(r, http.MethodGet, "/admin/stats", admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]json.Number
	dec := json.NewDecoder(bytes.NewReader(w.Body.Bytes()))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&stats))
	assert.Equal(t, "6", stats["total_products"].String())
}

func TestProductSearch(t *testing.T) {
	r, _ := newTestRouter(t)
	jane := login(t, r, "jane@x.com")

	w := doJSON(r, http.MethodGet, "/user/products/search?q=watch", jane.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Smart Fitness Watch", products[0].Title)
}

func TestCartFlow_AddUpdateCheckout(t *testing.T) {
	r, _ := newTestRouter(t)
	jane := login(t, r, "jane@x.com")

	// Add the same product twice: one line, quantity 2
	for i := 0; i < 2; i++ {
		w := doJSON(r, http.MethodPost, "/user/cart/", jane.Token, gin.H{"product_id": "6"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := doJSON(r, http.MethodGet, "/user/cart/", jane.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.CartLine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	// Bump quantity, then check the derived summary
	w = doJSON(r, http.MethodPut, "/user/cart/6", jane.Token, gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/user/cart/summary", jane.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		TotalItems int     `json:"total_items"`
		TotalPrice float64 `json:"total_price"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 3, summary.TotalItems)
	assert.InDelta(t, 3*119.99, summary.TotalPrice, 0.001)

	// Checkout drains the cart and records the order
	w = doJSON(r, http.MethodPost, "/user/checkout", jane.Token, gin.H{
		"shipping_info": gin.H{
			"first_name": "Jane", "last_name": "Doe",
			"address": "1 Main St", "city": "Springfield",
			"state": "IL", "zip_code": "62701", "phone": "555-0100",
		},
		"payment_info": gin.H{
			"card_number": "4111 1111 1111 1111",
			"expiry_date": "12/27",
			"cvv":         "123",
			"card_name":   "Jane Doe",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "1111", order.CardLast4)
	assert.InDelta(t, 3*119.99, order.Subtotal, 0.001)
	assert.InDelta(t, 0, order.Shipping, 0.001)

	w = doJSON(r, http.MethodGet, "/user/cart/", jane.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Empty(t, items)

	w = doJSON(r, http.MethodGet, "/user/orders", jane.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCartAdd_UnknownProduct(t *testing.T) {
	r, _ := newTestRouter(t)
	jane := login(t, r, "jane@x.com")

	w := doJSON(r, http.MethodPost, "/user/cart/", jane.Token, gin.H{"product_id": "999"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartsAreSeparatePerUser(t *testing.T) {
	r, _ := newTestRouter(t)

	alice := login(t, r, "alice@x.com")
	w := doJSON(r, http.MethodPost, "/user/cart/", alice.Token, gin.H{"product_id": "1"})
	require.Equal(t, http.StatusOK, w.Code)

	bob := login(t, r, "bob@x.com")
	w = doJSON(r, http.MethodPost, "/user/cart/", bob.Token, gin.H{"product_id": "2"})
	require.Equal(t, http.StatusOK, w.Code)

	// Each token sees only its own cart
	w = doJSON(r, http.MethodGet, "/user/cart/", alice.Token, nil)
	var items []models.CartLine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ProductID)

	w = doJSON(r, http.MethodGet, "/user/cart/", bob.Token, nil)
	items = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ProductID)
}

func TestAdminCreateProduct(t *testing.T) {
	r, _ := newTestRouter(t)
	admin := login(t, r, "admin@x.com")

	w := doJSON(r, http.MethodPost, "/admin/products", admin.Token, gin.H{
		"title":       "Desk Lamp",
		"description": "Adjustable LED desk lamp.",
		"price":       39.99,
		"category":    "Home & Kitchen",
		"stock":       10,
		"rating":      4.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var product models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, "7", product.ID)

	// Missing required fields are rejected before any state change
	w = doJSON(r, http.MethodPost, "/admin/products", admin.Token, gin.H{"title": "No description"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMe_EachTokenSeesItsOwnProfile(t *testing.T) {
	r, _ := newTestRouter(t)

	alice := login(t, r, "alice@x.com")
	bob := login(t, r, "bob@x.com")

	// Alice's token still resolves her profile after Bob signed in
	w := doJSON(r, http.MethodGet, "/user/", alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var profile models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "alice@x.com", profile.Email)
	assert.Equal(t, alice.User.ID, profile.ID)

	w = doJSON(r, http.MethodGet, "/user/", bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "bob@x.com", profile.Email)
}

func TestLogout_ScopedToSessionOwner(t *testing.T) {
	r, d := newTestRouter(t)

	// No token, no logout
	w := doJSON(r, http.MethodPost, "/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	alice := login(t, r, "alice@x.com")
	bob := login(t, r, "bob@x.com")

	// Alice's token cannot tear down Bob's session
	w = doJSON(r, http.MethodPost, "/auth/logout", alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	current := d.Auth.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, bob.User.ID, current.ID)
	_, err := d.KV.Get("auth_token")
	assert.NoError(t, err)

	// The owner can
	w = doJSON(r, http.MethodPost, "/auth/logout", bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, d.Auth.CurrentUser())
	_, err = d.KV.Get("auth_token")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestOrders_TokenWithoutIdentityClaim(t *testing.T) {
	r, _ := newTestRouter(t)

	// Valid signature, but no user_id claim
	claims := jwt.MapClaims{
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := doJSON(r, http.MethodGet, "/user/orders", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/user/checkout", token, gin.H{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/logout", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
