package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/junaidrashid-git/storefront-api/controllers/admin"
	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	productcontroller "github.com/junaidrashid-git/storefront-api/controllers/product"
	userControllers "github.com/junaidrashid-git/storefront-api/controllers/user"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the /admin endpoints: dashboard stats, the
// user list and spreadsheet exports.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateToken, middleware.RequireAdmin(db))
	{
		admin.GET("/dashboard", adminController.GetDashboardStats(db))
		admin.GET("/users", userControllers.GetAllUsers(db))

		export := admin.Group("/export")
		{
			export.GET("/products.xlsx", productcontroller.ExportProductsToExcel(db))
			export.GET("/orders.xlsx", orderControllers.ExportOrdersToExcel(db))
		}
	}
}
