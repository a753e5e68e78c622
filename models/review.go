package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is one user's rating of one product. The composite unique index
// rejects a second review from the same user at the database, so concurrent
// submissions cannot slip past an application-level pre-check.
type Review struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	UserID    string  `gorm:"not null;uniqueIndex:idx_review_user_product" json:"userId"`
	User      User    `gorm:"foreignKey:UserID" json:"-"`
	ProductID string  `gorm:"not null;uniqueIndex:idx_review_user_product" json:"productId"`
	Rating    int     `gorm:"not null" json:"rating"`
	Comment   string  `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
