package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardStats is recomputed from the orders table on every request; at
// this scale a full scan beats maintaining a materialized view.
type DashboardStats struct {
	NewOrders       int64           `json:"newOrders"`     // freshly placed (status pending)
	PendingOrders   int64           `json:"pendingOrders"` // awaiting payment
	ShippedOrders   int64           `json:"shippedOrders"`
	DeliveredOrders int64           `json:"deliveredOrders"`
	Revenue         decimal.Decimal `json:"revenue"` // sum of paid order totals
}

// GET /admin/dashboard
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := ComputeDashboardStats(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// ComputeDashboardStats folds over the orders table. Revenue sums
// TotalPrice of orders whose payment status is "paid"; the totals were
// frozen at order time so later price edits never move the number.
func ComputeDashboardStats(db *gorm.DB) (*DashboardStats, error) {
	stats := &DashboardStats{Revenue: decimal.Zero}

	counts := []struct {
		dest  *int64
		query string
		value string
	}{
		{&stats.NewOrders, "status = ?", string(models.OrderStatusPending)},
		{&stats.PendingOrders, "payment_status = ?", string(models.PaymentStatusPending)},
		{&stats.ShippedOrders, "status = ?", string(models.OrderStatusShipped)},
		{&stats.DeliveredOrders, "status = ?", string(models.OrderStatusDelivered)},
	}
	for _, cnt := range counts {
		if err := db.Model(&models.Order{}).Where(cnt.query, cnt.value).Count(cnt.dest).Error; err != nil {
			return nil, err
		}
	}

	var paid []models.Order
	if err := db.Where("payment_status = ?", models.PaymentStatusPaid).Find(&paid).Error; err != nil {
		return nil, err
	}
	for _, o := range paid {
		stats.Revenue = stats.Revenue.Add(o.TotalPrice)
	}

	return stats, nil
}
