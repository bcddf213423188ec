package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Wishlist marks a product as saved by a user. At most one row per
// (user, product); the service checks existence before inserting.
type Wishlist struct {
	ID        string   `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string   `gorm:"size:36;index;not null"`
	User      User     `gorm:"foreignKey:UserID"`
	ProductID string   `gorm:"size:36;index;not null"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *Wishlist) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return
}
