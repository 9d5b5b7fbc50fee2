package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// PaymentResult is the reconciliation record from the payment provider.
// The unique index on payment_id is what makes webhook replays safe: a
// second insert for the same intent cannot land.
type PaymentResult struct {
	PaymentID     string `gorm:"column:payment_id;uniqueIndex" json:"id"`
	PaymentStatus string `gorm:"column:payment_status" json:"status"`
}

// ShippingAddress is snapshotted onto the order at reconciliation time;
// later edits to the user's address book do not touch placed orders.
type ShippingAddress struct {
	FullName      string `json:"full_name"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	PhoneNumber   string `json:"phone_number"`
}

type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"index;not null" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ClerkID         string          `json:"clerk_id"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`
	PaymentResult   PaymentResult   `gorm:"embedded" json:"payment_result"`
	TotalPrice      float64         `json:"total_price"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"` // price at time of purchase
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}
