package migrations

import (
	"github.com/storefront-go/storefront/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Brand{},
		&models.Gender{},
		&models.Color{},
		&models.Size{},
		&models.Highlight{},
		&models.Product{},
		&models.Image{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.Wishlist{},
	)
}
