package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/yusifu-m-barrie/buy-ya/controllers/cart"
	orderControllers "github.com/yusifu-m-barrie/buy-ya/controllers/order"
	userControllers "github.com/yusifu-m-barrie/buy-ya/controllers/user"
	"github.com/yusifu-m-barrie/buy-ya/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all authenticated customer endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/api/users")
	users.Use(middleware.ValidateToken(db))
	{
		// ──────────────── Profile ────────────────
		users.GET("/me", userControllers.GetMe(db))
		users.PUT("/me", userControllers.UpdateMe(db))

		// ──────────────── Addresses ────────────────
		users.GET("/addresses", userControllers.GetAddresses(db))
		users.POST("/addresses", userControllers.AddAddress(db))
		users.PUT("/addresses/:addressId", userControllers.UpdateAddress(db))
		users.DELETE("/addresses/:addressId", userControllers.DeleteAddress(db))

		// ──────────────── Wishlist ────────────────
		users.GET("/wishlist", userControllers.GetWishlist(db))
		users.POST("/wishlist", userControllers.AddToWishlist(db))
		users.DELETE("/wishlist/:productId", userControllers.RemoveFromWishlist(db))
	}

	cart := r.Group("/api/cart")
	cart.Use(middleware.ValidateToken(db))
	{
		cart.GET("", cartControllers.GetUserCart(db))
		cart.POST("", cartControllers.UpdateCartItem(db))
		cart.DELETE("/:productId", cartControllers.DeleteCartItem(db))
		cart.DELETE("", cartControllers.ClearUserCart(db))
	}

	orders := r.Group("/api/orders")
	orders.Use(middleware.ValidateToken(db))
	{
		orders.GET("", orderControllers.GetMyOrders(db))
		orders.GET("/:orderId", orderControllers.GetOrderByID(db))
	}
}
