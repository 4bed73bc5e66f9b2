package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.POST("", orderControllers.PlaceOrderHandler(db))
		orders.GET("/myorders", orderControllers.GetMyOrdersHandler(db))

		admin := orders.Group("")
		admin.Use(middleware.RequireAdmin(db))
		{
			admin.GET("", orderControllers.GetAllOrdersHandler(db))
			admin.GET("/ws", orderControllers.OrderWebSocketHandler)
			admin.PUT("/:id/status", orderControllers.UpdateOrderStatusHandler(db))
			admin.PUT("/:id/payment-status", orderControllers.UpdatePaymentStatusHandler(db))
			admin.DELETE("/:id", orderControllers.DeleteOrderHandler(db))
		}
	}
}
