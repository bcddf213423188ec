package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Size struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string    `gorm:"size:100;not null"`
	InStock   bool      `gorm:"default:true"`
	Products  []Product `gorm:"many2many:product_sizes;"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Size) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
