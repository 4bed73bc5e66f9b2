package routes

import (
	"github.com/gin-gonic/gin"
	categoryController "github.com/junaidrashid-git/storefront-api/controllers/category"
	collectionController "github.com/junaidrashid-git/storefront-api/controllers/collection"
	productcontroller "github.com/junaidrashid-git/storefront-api/controllers/product"
	siteController "github.com/junaidrashid-git/storefront-api/controllers/site"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers products, categories, collections and site
// content. Reads are public; writes require an admin bearer token.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	adminOnly := []gin.HandlerFunc{middleware.ValidateToken, middleware.RequireAdmin(db)}

	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
		products.GET("/category/:categoryId", productcontroller.GetProductsByCategory(db))

		products.POST("", append(adminOnly, productcontroller.CreateProduct(db))...)
		products.PUT("/:id", append(adminOnly, productcontroller.UpdateProduct(db))...)
		products.DELETE("/:id", append(adminOnly, productcontroller.DeleteProduct(db))...)
	}

	categories := r.Group("/categories")
	{
		categories.GET("", categoryController.GetCategories(db))
		categories.POST("", append(adminOnly, categoryController.CreateCategory(db))...)
		categories.DELETE("/:id", append(adminOnly, categoryController.DeleteCategory(db))...)
	}

	collections := r.Group("/collections")
	{
		collections.GET("", collectionController.GetCollections(db))
		collections.POST("", append(adminOnly, collectionController.CreateCollection(db))...)
		collections.DELETE("/:id", append(adminOnly, collectionController.DeleteCollection(db))...)
	}

	site := r.Group("/site-content")
	{
		site.GET("", siteController.GetContent(db))
		site.POST("", append(adminOnly, siteController.AddOrUpdateContent(db))...)
		site.DELETE("/banner/:id", append(adminOnly, siteController.DeleteBanner(db))...)
	}
}
