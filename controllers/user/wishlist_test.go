package userControllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusifu-m-barrie/buy-ya/models"
	"gorm.io/gorm"
)

func wishlistCount(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.WishlistItem{}).Where("user_id = ?", userID).Count(&n).Error)
	return n
}

func TestAddToWishlist_RejectsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	product := models.Product{Name: "Widget", Price: 20, Stock: 5}
	require.NoError(t, db.Create(&product).Error)
	r := newUserRouter(db, &user)

	body := map[string]interface{}{"product_id": product.ID}
	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, "/api/users/wishlist", body).Code)

	w := doJSON(t, r, http.MethodPost, "/api/users/wishlist", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already in wishlist")
	assert.Equal(t, int64(1), wishlistCount(t, db, user.ID))
}

func TestAddToWishlist_UnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	r := newUserRouter(db, &user)

	w := doJSON(t, r, http.MethodPost, "/api/users/wishlist", map[string]interface{}{"product_id": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveFromWishlist_AbsentLeavesListUntouched(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	productA := models.Product{Name: "A", Price: 5, Stock: 5}
	require.NoError(t, db.Create(&productA).Error)
	r := newUserRouter(db, &user)

	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, "/api/users/wishlist",
		map[string]interface{}{"product_id": productA.ID}).Code)

	w := doJSON(t, r, http.MethodDelete, "/api/users/wishlist/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1), wishlistCount(t, db, user.ID))
}

func TestRemoveFromWishlist_RemovesEntry(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	product := models.Product{Name: "Widget", Price: 20, Stock: 5}
	require.NoError(t, db.Create(&product).Error)
	r := newUserRouter(db, &user)

	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, "/api/users/wishlist",
		map[string]interface{}{"product_id": product.ID}).Code)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/users/wishlist/%d", product.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(0), wishlistCount(t, db, user.ID))
}
