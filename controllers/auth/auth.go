package authControllers

import (
	"net/http"

	"github.com/G9140/E-commerce-website/notify"
	"github.com/G9140/E-commerce-website/state"
	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /auth/login
func Login(store *state.AuthStore, hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			hub.Error("Please enter a valid email and password")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !store.Login(input.Email, input.Password) {
			hub.Error("Login failed. Please check your credentials.")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}

		user := store.CurrentUser()
		hub.Success("Welcome back, " + user.Name + "!")
		c.JSON(http.StatusOK, gin.H{
			"token": store.Token(),
			"user":  user,
		})
	}
}

// POST /auth/register
func Register(store *state.AuthStore, hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			hub.Error("Please fill in all registration fields")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !store.Register(input.Name, input.Email, input.Password) {
			hub.Error("Registration failed. Please try again.")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		hub.Success("Account created successfully!")
		c.JSON(http.StatusCreated, gin.H{
			"token": store.Token(),
			"user":  store.CurrentUser(),
		})
	}
}

// POST /auth/logout
// Only the session owner tears the session down; a token belonging to
// an earlier login must not clobber whoever signed in after.
func Logout(store *state.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		if current := store.CurrentUser(); current != nil && current.ID == userID {
			store.Logout()
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /user/
func Me(store *state.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		user, found := store.UserByID(userID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
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
