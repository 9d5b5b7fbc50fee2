package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/yusifu-m-barrie/buy-ya/controllers/admin"
	orderControllers "github.com/yusifu-m-barrie/buy-ya/controllers/order"
	productcontroller "github.com/yusifu-m-barrie/buy-ya/controllers/product"
	"github.com/yusifu-m-barrie/buy-ya/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the dashboard endpoints. Requires the
// X-API-KEY header.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		// ──────────────── Catalog management ────────────────
		admin.POST("/products", productcontroller.CreateProduct(db))
		admin.PUT("/products/:id", productcontroller.UpdateProduct(db))
		admin.DELETE("/products/:id", productcontroller.DeleteProduct(db))
		admin.GET("/products/export", productcontroller.ExportProductsToExcel(db))

		// ──────────────── Orders ────────────────
		admin.GET("/orders", orderControllers.GetAllOrders(db))
		admin.PATCH("/orders/:orderId/status", orderControllers.UpdateOrderStatus(db))
		admin.GET("/orders/feed", orderControllers.OrderFeedHandler)

		// ──────────────── Customers & stats ────────────────
		admin.GET("/customers", adminController.GetAllCustomers(db))
		admin.GET("/stats", adminController.GetDashboardStats(db))
	}
}
