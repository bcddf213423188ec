package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User exists as the referent for carts, orders, reviews and wishlists.
// Authentication itself is handled outside this codebase; the session
// cookie only carries the user id.
type User struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	Password  string `gorm:"size:255;not null"`
	Wishlists []Wishlist
	Reviews   []Review
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
