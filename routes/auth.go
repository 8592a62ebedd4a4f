package routes

import (
	authControllers "github.com/G9140/E-commerce-website/controllers/auth"
	"github.com/G9140/E-commerce-website/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authControllers.Login(d.Auth, d.Hub))
		authGroup.POST("/register", authControllers.Register(d.Auth, d.Hub))
		authGroup.POST("/logout", middleware.ValidateToken, authControllers.Logout(d.Auth))
	}
}
