package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Highlight struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string    `gorm:"size:255;not null"`
	Products  []Product `gorm:"many2many:product_highlights;"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (h *Highlight) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return
}
