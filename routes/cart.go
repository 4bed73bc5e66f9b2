package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/junaidrashid-git/storefront-api/controllers/cart"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the cart endpoints. All require a bearer token.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("/add", cartControllers.AddToCart(db))
		cart.PUT("/quantity", cartControllers.UpdateQuantity(db))
		cart.DELETE("/:productId", cartControllers.RemoveFromCart(db))
		cart.DELETE("", cartControllers.ClearCart(db))
	}
}
