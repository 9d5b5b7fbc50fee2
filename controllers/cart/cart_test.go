package cartControllers

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
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
	))
	return db
}

func newCartRouter(db *gorm.DB, user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cart := r.Group("/api/cart", func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	})
	cart.GET("", GetUserCart(db))
	cart.POST("", UpdateCartItem(db))
	cart.DELETE("/:productId", DeleteCartItem(db))
	cart.DELETE("", ClearUserCart(db))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedCartFixtures(t *testing.T, db *gorm.DB) (models.User, models.Product) {
	t.Helper()
	user := models.User{ClerkID: "clerk_1", Email: "ada@example.com"}
	require.NoError(t, db.Create(&user).Error)
	product := models.Product{Name: "Widget", Price: 20, Stock: 5}
	require.NoError(t, db.Create(&product).Error)
	return user, product
}

func TestUpdateCartItem_AddsThenUpdatesQuantity(t *testing.T) {
	db := setupTestDB(t)
	user, product := seedCartFixtures(t, db)
	r := newCartRouter(db, &user)

	w := doJSON(t, r, http.MethodPost, "/api/cart", map[string]interface{}{
		"product_id": product.ID, "quantity": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/cart", map[string]interface{}{
		"product_id": product.ID, "quantity": 3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 20.0, items[0].Price)
	assert.Equal(t, "Widget", items[0].Name)
}

func TestUpdateCartItem_UnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedCartFixtures(t, db)
	r := newCartRouter(db, &user)

	w := doJSON(t, r, http.MethodPost, "/api/cart", map[string]interface{}{
		"product_id": 999, "quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCartItem_NotFound(t *testing.T) {
	db := setupTestDB(t)
	user, product := seedCartFixtures(t, db)
	r := newCartRouter(db, &user)

	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/cart", map[string]interface{}{
		"product_id": product.ID, "quantity": 1,
	}).Code)

	w := doJSON(t, r, http.MethodDelete, "/api/cart/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearUserCart(t *testing.T) {
	db := setupTestDB(t)
	user, product := seedCartFixtures(t, db)
	r := newCartRouter(db, &user)

	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/cart", map[string]interface{}{
		"product_id": product.ID, "quantity": 2,
	}).Code)

	w := doJSON(t, r, http.MethodDelete, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeleteCartItem_RemovesRow(t *testing.T) {
	db := setupTestDB(t)
	user, product := seedCartFixtures(t, db)
	r := newCartRouter(db, &user)

	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/cart", map[string]interface{}{
		"product_id": product.ID, "quantity": 1,
	}).Code)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/cart/%d", product.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
