package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/config"
	userControllers "github.com/junaidrashid-git/storefront-api/controllers/user"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers registration, login and the profile endpoint.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	users := r.Group("/users")
	{
		users.POST("/register", userControllers.Register(db, cfg.Auth.TokenTTL))
		users.POST("/login", userControllers.Login(db, cfg.Auth.TokenTTL))

		users.GET("/profile", middleware.ValidateToken, userControllers.GetProfile(db))
	}
}
