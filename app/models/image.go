package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image is a stored product photo. Path is the public path returned by the
// storage collaborator, e.g. /images/3f1b….jpg.
type Image struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string `gorm:"size:36;index;not null"`
	Path      string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (i *Image) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return
}
