package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cart is the per-user basket. The unique index on UserID backs the
// find-or-create contract: a user never has more than one cart.
type Cart struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string `gorm:"size:36;not null;uniqueIndex"`
	User      User   `gorm:"foreignKey:UserID"`
	CartItems []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
