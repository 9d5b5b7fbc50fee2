package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yusifu-m-barrie/buy-ya/config"
	paymentControllers "github.com/yusifu-m-barrie/buy-ya/controllers/payment"
	"github.com/yusifu-m-barrie/buy-ya/middleware"
	"gorm.io/gorm"
)

// SetupPaymentRoutes registers the checkout endpoints.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, gateway paymentControllers.Gateway) {
	payment := r.Group("/api/payment")
	{
		payment.POST("/create-intent",
			middleware.ValidateToken(db),
			paymentControllers.CreatePaymentIntent(db, gateway),
		)

		// No session auth: Stripe authenticates via the signature header.
		payment.POST("/webhook",
			paymentControllers.HandleWebhook(db, config.GetEnv("STRIPE_WEBHOOK_SECRET", "")),
		)
	}
}
