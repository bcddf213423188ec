package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name        string          `gorm:"size:255;not null"`
	Slug        string          `gorm:"size:255;not null;uniqueIndex"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Quantity    int             `gorm:"not null;default:0"`

	CategoryID string   `gorm:"size:36;index;not null"`
	Category   Category `gorm:"foreignKey:CategoryID"`
	BrandID    string   `gorm:"size:36;index;not null"`
	Brand      Brand    `gorm:"foreignKey:BrandID"`
	GenderID   string   `gorm:"size:36;index;not null"`
	Gender     Gender   `gorm:"foreignKey:GenderID"`

	Colors     []Color     `gorm:"many2many:product_colors;"`
	Sizes      []Size      `gorm:"many2many:product_sizes;"`
	Highlights []Highlight `gorm:"many2many:product_highlights;"`

	Images    []Image
	Reviews   []Review
	Wishlists []Wishlist

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
