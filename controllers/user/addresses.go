package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yusifu-m-barrie/buy-ya/middleware"
	"github.com/yusifu-m-barrie/buy-ya/models"
	"gorm.io/gorm"
)

type AddressInput struct {
	Label         string `json:"label"`
	FullName      string `json:"full_name"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	PhoneNumber   string `json:"phone_number"`
	IsDefault     *bool  `json:"is_default"`
}

func listAddresses(db *gorm.DB, userID uint) ([]models.Address, error) {
	var addresses []models.Address
	err := db.Where("user_id = ?", userID).Order("created_at ASC").Find(&addresses).Error
	return addresses, err
}

// clearDefaultAddresses unsets is_default on every address of the user.
// Always called before marking a new default, so at most one row ever
// carries the flag.
func clearDefaultAddresses(tx *gorm.DB, userID uint) error {
	return tx.Model(&models.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}

// GET /api/users/addresses
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		addresses, err := listAddresses(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"addresses": addresses})
	}
}

// POST /api/users/addresses
func AddAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.FullName == "" || input.StreetAddress == "" || input.City == "" ||
			input.State == "" || input.ZipCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required address fields"})
			return
		}

		isDefault := input.IsDefault != nil && *input.IsDefault
		address := models.Address{
			ID:            uuid.NewString(),
			UserID:        user.ID,
			Label:         input.Label,
			FullName:      input.FullName,
			StreetAddress: input.StreetAddress,
			City:          input.City,
			State:         input.State,
			ZipCode:       input.ZipCode,
			PhoneNumber:   input.PhoneNumber,
			IsDefault:     isDefault,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if isDefault {
				if err := clearDefaultAddresses(tx, user.ID); err != nil {
					return err
				}
			}
			return tx.Create(&address).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add address"})
			return
		}

		addresses, err := listAddresses(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Address added successfully", "addresses": addresses})
	}
}

// PUT /api/users/addresses/:addressId
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var address models.Address
		if err := db.Where("id = ? AND user_id = ?", c.Param("addressId"), user.ID).
			First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch address"})
			return
		}

		if input.Label != "" {
			address.Label = input.Label
		}
		if input.FullName != "" {
			address.FullName = input.FullName
		}
		if input.StreetAddress != "" {
			address.StreetAddress = input.StreetAddress
		}
		if input.City != "" {
			address.City = input.City
		}
		if input.State != "" {
			address.State = input.State
		}
		if input.ZipCode != "" {
			address.ZipCode = input.ZipCode
		}
		if input.PhoneNumber != "" {
			address.PhoneNumber = input.PhoneNumber
		}
		if input.IsDefault != nil {
			address.IsDefault = *input.IsDefault
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if input.IsDefault != nil && *input.IsDefault {
				if err := clearDefaultAddresses(tx, user.ID); err != nil {
					return err
				}
			}
			return tx.Save(&address).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
			return
		}

		addresses, err := listAddresses(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address updated successfully", "addresses": addresses})
	}
}

// DELETE /api/users/addresses/:addressId
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		result := db.Where("id = ? AND user_id = ?", c.Param("addressId"), user.ID).
			Delete(&models.Address{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}

		addresses, err := listAddresses(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully", "addresses": addresses})
	}
}
