package paymentControllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yusifu-m-barrie/buy-ya/middleware"
	"github.com/yusifu-m-barrie/buy-ya/models"
	"gorm.io/gorm"
)

const (
	flatShippingUSD = 10.0
	taxRate         = 0.08
)

type CheckoutItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type ShippingAddressInput struct {
	FullName      string `json:"full_name" binding:"required"`
	StreetAddress string `json:"street_address" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	ZipCode       string `json:"zip_code" binding:"required"`
	PhoneNumber   string `json:"phone_number"`
}

type CreateIntentRequest struct {
	CartItems       []CheckoutItemInput  `json:"cart_items" binding:"required"`
	ShippingAddress ShippingAddressInput `json:"shipping_address" binding:"required"`
}

// validatedItem is the per-item snapshot serialized into the intent
// metadata; the webhook rebuilds the order from it.
type validatedItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// orderTotal applies flat shipping and tax on top of the item subtotal.
func orderTotal(subtotal float64) float64 {
	return subtotal + flatShippingUSD + subtotal*taxRate
}

// amountCents converts a dollar total to the provider's minor units.
func amountCents(total float64) int64 {
	return int64(math.Round(total * 100))
}

// CreatePaymentIntent recomputes the order total from server-side prices,
// resolves the Stripe customer and returns a client secret. Nothing is
// reserved here: stock is only checked, the binding decrement happens at
// webhook reconciliation.
func CreatePaymentIntent(db *gorm.DB, gw Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CreateIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if len(req.CartItems) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		var subtotal float64
		validated := make([]validatedItem, 0, len(req.CartItems))
		for _, item := range req.CartItems {
			var product models.Product
			if err := db.Preload("Images").First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Product %d not found", item.ProductID)})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
				return
			}
			if product.Stock < item.Quantity {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock for " + product.Name})
				return
			}

			subtotal += product.Price * float64(item.Quantity)
			validated = append(validated, validatedItem{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  item.Quantity,
				Image:     product.FirstImageURL(),
			})
		}

		total := orderTotal(subtotal)
		if total <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order total"})
			return
		}

		customerID := user.StripeCustomerID
		if customerID == "" {
			newID, err := gw.CreateCustomer(user.Email, user.Name, map[string]string{
				"clerkId": user.ClerkID,
				"userId":  strconv.FormatUint(uint64(user.ID), 10),
			})
			if err != nil {
				log.Println("❌ Failed to create payment customer:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
				return
			}
			// Write-once: never overwrite an id another request raced in.
			if err := db.Model(&models.User{}).
				Where("id = ? AND (stripe_customer_id IS NULL OR stripe_customer_id = '')", user.ID).
				Update("stripe_customer_id", newID).Error; err != nil {
				log.Println("❌ Failed to persist stripe customer id:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
				return
			}
			customerID = newID
		}

		itemsJSON, err := json.Marshal(validated)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
			return
		}
		addressJSON, err := json.Marshal(req.ShippingAddress)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
			return
		}

		// Metadata is the only channel carrying the order forward to the
		// webhook; the intent is not linked to any local order row.
		metadata := map[string]string{
			"clerkId":         user.ClerkID,
			"userId":          strconv.FormatUint(uint64(user.ID), 10),
			"orderItems":      string(itemsJSON),
			"shippingAddress": string(addressJSON),
			"totalPrice":      strconv.FormatFloat(total, 'f', 2, 64),
		}

		_, clientSecret, err := gw.CreateIntent(amountCents(total), customerID, metadata)
		if err != nil {
			log.Println("❌ Failed to create payment intent:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
	}
}
