package models

import "time"

type User struct {
	ID               uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ClerkID          string         `gorm:"uniqueIndex;not null" json:"clerk_id"` // subject id from the auth provider
	Email            string         `gorm:"uniqueIndex;not null" json:"email"`
	Name             string         `json:"name"`
	Phone            string         `json:"phone"`
	StripeCustomerID string         `json:"stripe_customer_id,omitempty"` // set once, on first checkout
	Addresses        []Address      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses"`
	Wishlist         []WishlistItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"wishlist"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// Address is an owned row per user rather than an embedded blob, so each
// address has a stable id the client can target directly.
type Address struct {
	ID            string    `gorm:"primaryKey" json:"id"` // uuid
	UserID        uint      `gorm:"index;not null" json:"-"`
	Label         string    `json:"label"`
	FullName      string    `json:"full_name"`
	StreetAddress string    `json:"street_address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	ZipCode       string    `json:"zip_code"`
	PhoneNumber   string    `json:"phone_number"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
}

// WishlistItem rows form a set: the composite unique index rejects the
// same product twice for one user.
type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"uniqueIndex:idx_wishlist_user_product" json:"-"`
	ProductID uint      `gorm:"uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}
