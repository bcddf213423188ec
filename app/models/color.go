package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Class and SelectedClass carry the CSS classes the product page uses to
// render the color swatch in its idle and picked states.
type Color struct {
	ID            string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name          string `gorm:"size:100;not null"`
	Class         string `gorm:"size:100"`
	SelectedClass string `gorm:"size:100"`
	Products      []Product `gorm:"many2many:product_colors;"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (c *Color) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
