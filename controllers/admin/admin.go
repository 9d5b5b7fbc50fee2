package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yusifu-m-barrie/buy-ya/models"
	"gorm.io/gorm"
)

// GetAllCustomers lists registered customers with their public fields.
// GET /api/admin/customers
func GetAllCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "clerk_id", "email", "name", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			log.Println("❌ Failed to fetch customers:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"customers": users})
	}
}

// GetDashboardStats returns the dashboard headline numbers.
// GET /api/admin/stats
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalOrders, totalProducts, totalCustomers int64
		var totalRevenue float64

		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		if err := db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		if err := db.Model(&models.User{}).Count(&totalCustomers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		if err := db.Model(&models.Order{}).
			Select("COALESCE(SUM(total_price), 0)").
			Scan(&totalRevenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_orders":    totalOrders,
			"total_revenue":   totalRevenue,
			"total_products":  totalProducts,
			"total_customers": totalCustomers,
		})
	}
}
