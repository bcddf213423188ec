package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is one variant line in a cart. Color, size and image are optional
// picks; the variant identity is (cart, product, color, size, image) with
// NULL treated as a distinct value.
type CartItem struct {
	ID        string   `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CartID    string   `gorm:"size:36;index;not null"`
	Cart      *Cart    `gorm:"foreignKey:CartID"`
	ProductID string   `gorm:"size:36;index;not null"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	ColorID   *string  `gorm:"size:36"`
	Color     *Color   `gorm:"foreignKey:ColorID"`
	SizeID    *string  `gorm:"size:36"`
	Size      *Size    `gorm:"foreignKey:SizeID"`
	ImageID   *string  `gorm:"size:36"`
	Image     *Image   `gorm:"foreignKey:ImageID"`
	Quantity  int      `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}
