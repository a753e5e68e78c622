package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is one (user, product) row. The composite unique index makes
// add-to-cart a single upsert instead of a read-then-write pair.
type CartItem struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	UserID    string  `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID string  `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == "" {
		ci.ID = uuid.NewString()
	}
	return nil
}
