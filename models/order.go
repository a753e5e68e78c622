package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // created at checkout, awaiting payment
	OrderStatusProcessing OrderStatus = "processing" // payment confirmed by webhook
	OrderStatusCompleted  OrderStatus = "completed"  // fulfilled
	OrderStatusCancelled  OrderStatus = "cancelled"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// ShippingAddress is recorded from the payment provider's webhook payload
// once the customer has completed the hosted checkout.
type ShippingAddress struct {
	Name       string `json:"name,omitempty"`
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

type Order struct {
	ID              string          `gorm:"primaryKey" json:"id"`
	UserID          string          `gorm:"not null;index" json:"userId"`
	User            User            `gorm:"foreignKey:UserID" json:"-"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	TotalAmount     float64         `gorm:"not null" json:"totalAmount"`
	StripeSessionID string          `gorm:"uniqueIndex" json:"stripeSessionId"`
	ShippingAddress ShippingAddress `gorm:"serializer:json;type:text" json:"shippingAddress"`
	PaymentStatus   PaymentStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"paymentStatus"`
	PaymentIntentID *string         `gorm:"uniqueIndex" json:"paymentIntentId"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderItem captures one cart line at checkout time. PriceAtTime freezes the
// product price, so later catalog edits never change what was charged.
type OrderItem struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	OrderID     string  `gorm:"not null;index" json:"orderId"`
	ProductID   string  `gorm:"not null" json:"productId"`
	Product     Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	PriceAtTime float64 `gorm:"not null" json:"priceAtTime"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}

// ValidStatusUpdate reports whether s is a status an admin may set directly.
// Orders enter "pending" only through checkout, never by hand.
func ValidStatusUpdate(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
