package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem copies a cart line at checkout. Price is the product price at
// order time, not a live reference.
type OrderItem struct {
	ID        string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	OrderID   string          `gorm:"size:36;index;not null"`
	Order     *Order          `gorm:"foreignKey:OrderID"`
	ProductID string          `gorm:"size:36;index;not null"`
	Product   *Product        `gorm:"foreignKey:ProductID"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	ColorID   *string         `gorm:"size:36"`
	Color     *Color          `gorm:"foreignKey:ColorID"`
	SizeID    *string         `gorm:"size:36"`
	Size      *Size           `gorm:"foreignKey:SizeID"`
	ImageID   *string         `gorm:"size:36"`
	Image     *Image          `gorm:"foreignKey:ImageID"`
	Quantity  int             `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
