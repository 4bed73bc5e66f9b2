package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/config"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// public auth + profile
	SetupUserRoutes(r, db, cfg)

	// cart (JWT-protected)
	SetupCartRoutes(r, db)

	// orders (JWT, some admin-gated)
	SetupOrderRoutes(r, db)

	// catalog: products, categories, collections, site content
	SetupCatalogRoutes(r, db)

	// admin dashboard, users, exports
	SetupAdminRoutes(r, db)
}
