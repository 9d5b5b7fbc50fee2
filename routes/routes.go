package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	paymentControllers "github.com/yusifu-m-barrie/buy-ya/controllers/payment"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, user,
// admin and payment route groups under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB, gateway paymentControllers.Gateway) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Success"})
	})

	// Public catalog routes (no middleware)
	SetupProductRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)

	// Payment routes (create-intent JWT-protected, webhook signature-authenticated)
	SetupPaymentRoutes(r, db, gateway)
}
