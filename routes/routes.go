package routes

import (
	"time"

	notifyControllers "github.com/G9140/E-commerce-website/controllers/notify"
	"github.com/G9140/E-commerce-website/kvstore"
	"github.com/G9140/E-commerce-website/notify"
	"github.com/G9140/E-commerce-website/state"
	"github.com/gin-gonic/gin"
)

// Deps carries the application state every route group draws on.
type Deps struct {
	Auth         *state.AuthStore
	Catalog      *state.CatalogStore
	Cart         *state.CartStore
	KV           kvstore.Store
	Hub          *notify.Hub
	OrderLatency time.Duration
}

// SetupRoutes is the single entry‐point that wires up Auth, User, and Admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, d)

	// 2️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, d)

	// 3️⃣ Admin routes (JWT + admin role)
	SetupAdminRoutes(r, d)

	// Notification stream
	r.GET("/notifications/ws", notifyControllers.StreamNotifications(d.Hub))
}
