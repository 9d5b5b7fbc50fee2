package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/yusifu-m-barrie/buy-ya/controllers/product"
	"gorm.io/gorm"
)

// SetupProductRoutes registers the public catalog endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/api/products")
	{
		products.GET("", productcontroller.GetProducts(db))        // GET /api/products
		products.GET("/:id", productcontroller.GetProductByID(db)) // GET /api/products/:id
	}
}
