package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/G9140/E-commerce-website/kvstore"
	"github.com/G9140/E-commerce-website/notify"
	"github.com/G9140/E-commerce-website/routes"
	"github.com/G9140/E-commerce-website/state"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init persistence
	kv := initStore()

	// State containers
	hub := notify.NewHub(notify.DefaultTTL)
	authStore := state.NewAuthStore(kv, os.Getenv("JWT_SECRET"), time.Second)
	catalog := state.NewCatalogStore(time.Second)
	cart := state.NewCartStore(kv)

	// The cart follows whoever is signed in
	authStore.Subscribe(cart.SyncIdentity)

	// Pick up a session left over from the previous run
	authStore.Restore()

	// Seed the catalog (simulated fetch delay included)
	catalog.Load()
	log.Printf("📦 Catalog loaded: %d products", catalog.Count())

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Auth:         authStore,
		Catalog:      catalog,
		Cart:         cart,
		KV:           kv,
		Hub:          hub,
		OrderLatency: 2 * time.Second,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStore opens the key-value backend: Postgres when DATABASE_URL is
// set, otherwise a local SQLite file.
func initStore() kvstore.Store {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		kv, err := kvstore.OpenPostgres(databaseURL)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return kv
	}

	path := os.Getenv("KV_PATH")
	if path == "" {
		path = "shophub.db"
	}
	kv, err := kvstore.OpenSQLite(path)
	if err != nil {
		log.Fatalf("❌ Failed to open store at %s: %v", path, err)
	}
	return kv
}
