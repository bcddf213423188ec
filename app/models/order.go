package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusNew = "new"

	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"

	DeliveryMethodDelivery = "delivery"
	DeliveryMethodPickup   = "pickup"
)

// Order is the immutable checkout snapshot of a cart. Address and City are
// only present when DeliveryMethod is "delivery".
type Order struct {
	ID             string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID         string  `gorm:"size:36;index;not null"`
	User           User    `gorm:"foreignKey:UserID"`
	Status         string  `gorm:"size:50;not null"`
	Name           string  `gorm:"size:255;not null"`
	Email          string  `gorm:"size:255;not null"`
	Phone          string  `gorm:"size:255;not null"`
	Address        *string `gorm:"type:text"`
	City           *string `gorm:"size:255"`
	PaymentMethod  string  `gorm:"size:50;not null"`
	DeliveryMethod string  `gorm:"size:50;not null"`
	OrderItems     []OrderItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
