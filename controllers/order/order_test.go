package orderControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusifu-m-barrie/buy-ya/models"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint, paymentID string) models.Order {
	t.Helper()
	order := models.Order{
		UserID: userID,
		Items: []models.OrderItem{
			{ProductID: 1, Name: "Widget", Price: 20, Quantity: 2},
		},
		PaymentResult: models.PaymentResult{PaymentID: paymentID, PaymentStatus: "succeeded"},
		TotalPrice:    53.20,
		Status:        models.OrderStatusPending,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestGetMyOrders_OnlyOwnOrders(t *testing.T) {
	db := setupTestDB(t)
	owner := models.User{ClerkID: "clerk_1", Email: "ada@example.com"}
	other := models.User{ClerkID: "clerk_2", Email: "bob@example.com"}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&other).Error)
	seedOrder(t, db, owner.ID, "pi_1")
	seedOrder(t, db, other.ID, "pi_2")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/orders", func(c *gin.Context) {
		c.Set("user", &owner)
		c.Next()
	}, GetMyOrders(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "pi_1", resp.Orders[0].PaymentResult.PaymentID)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := setupTestDB(t)
	user := models.User{ClerkID: "clerk_1", Email: "ada@example.com"}
	require.NoError(t, db.Create(&user).Error)
	order := seedOrder(t, db, user.ID, "pi_1")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/api/admin/orders/:orderId/status", UpdateOrderStatus(db))

	patch := func(id, status string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]string{"status": status})
		req := httptest.NewRequest(http.MethodPatch, "/api/admin/orders/"+id+"/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusOK, patch(fmt.Sprint(order.ID), "shipped").Code)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, stored.Status)

	assert.Equal(t, http.StatusBadRequest, patch(fmt.Sprint(order.ID), "teleported").Code)
	assert.Equal(t, http.StatusNotFound, patch("999", "shipped").Code)
}
