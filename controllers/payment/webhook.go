package paymentControllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
	orderControllers "github.com/yusifu-m-barrie/buy-ya/controllers/order"
	"github.com/yusifu-m-barrie/buy-ya/models"
	"gorm.io/gorm"
)

// HandleWebhook is the asynchronous leg of checkout. The signature check
// is the only authentication on this route; once it passes, processing
// failures are logged and swallowed so Stripe is not told to retry a
// payment that already settled.
func HandleWebhook(db *gorm.DB, signingSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
			return
		}

		event, err := webhook.ConstructEventWithOptions(
			payload,
			c.GetHeader("Stripe-Signature"),
			signingSecret,
			webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
		)
		if err != nil {
			log.Println("❌ Webhook signature verification failed:", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Webhook signature verification failed"})
			return
		}

		if event.Type == "payment_intent.succeeded" {
			var intent stripe.PaymentIntent
			if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
				log.Println("❌ Failed to decode payment intent from event:", err)
			} else {
				log.Println("✅ Payment succeeded:", intent.ID)
				if err := reconcilePayment(db, &intent); err != nil {
					log.Println("❌ Error creating order from webhook:", err)
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

// reconcilePayment materializes the order carried in the intent metadata
// and decrements stock, atomically. The unique index on payment_id plus
// the in-transaction lookup make duplicate deliveries a no-op.
func reconcilePayment(db *gorm.DB, intent *stripe.PaymentIntent) error {
	meta := intent.Metadata

	var items []validatedItem
	if err := json.Unmarshal([]byte(meta["orderItems"]), &items); err != nil {
		return fmt.Errorf("decode orderItems metadata: %w", err)
	}
	if len(items) == 0 {
		return errors.New("payment intent metadata has no order items")
	}
	var address models.ShippingAddress
	if err := json.Unmarshal([]byte(meta["shippingAddress"]), &address); err != nil {
		return fmt.Errorf("decode shippingAddress metadata: %w", err)
	}
	total, err := strconv.ParseFloat(meta["totalPrice"], 64)
	if err != nil {
		return fmt.Errorf("decode totalPrice metadata: %w", err)
	}
	userID, err := strconv.ParseUint(meta["userId"], 10, 64)
	if err != nil {
		return fmt.Errorf("decode userId metadata: %w", err)
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}

	var created *models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing models.Order
		err := tx.Where("payment_id = ?", intent.ID).First(&existing).Error
		if err == nil {
			log.Println("Order already exists for payment:", intent.ID)
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		order := models.Order{
			UserID:          uint(userID),
			ClerkID:         meta["clerkId"],
			Items:           orderItems,
			ShippingAddress: address,
			PaymentResult: models.PaymentResult{
				PaymentID:     intent.ID,
				PaymentStatus: "succeeded",
			},
			TotalPrice: total,
			Status:     models.OrderStatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			// A concurrent delivery won the insert; the unique index on
			// payment_id held, so there is nothing left to do.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Println("Order already exists for payment:", intent.ID)
				return nil
			}
			return err
		}

		for _, item := range items {
			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		created = &order
		return nil
	})
	if err != nil {
		return err
	}

	if created != nil {
		log.Println("✅ Order created successfully:", created.ID)
		orderControllers.BroadcastNewOrder(*created)
	}
	return nil
}
