package seeders

import (
	"log"
	"math/rand"

	"github.com/storefront-go/storefront/app/db/fakers"
	"github.com/storefront-go/storefront/app/models"
	"gorm.io/gorm"
)

// Seed fills the catalog with demo reference data and a batch of faked
// products so the storefront has something to show.
func Seed(db *gorm.DB) error {
	user := fakers.UserFaker()
	if err := db.FirstOrCreate(user, models.User{Email: user.Email}).Error; err != nil {
		return err
	}

	var categories []models.Category
	for _, name := range []string{"Shirts", "Hoodies", "Sneakers", "Accessories"} {
		category := models.Category{Name: name}
		if err := db.FirstOrCreate(&category, models.Category{Name: name}).Error; err != nil {
			return err
		}
		categories = append(categories, category)
	}

	var brands []models.Brand
	for _, name := range []string{"Northwind", "Atlas", "Vela"} {
		brand := models.Brand{Name: name}
		if err := db.FirstOrCreate(&brand, models.Brand{Name: name}).Error; err != nil {
			return err
		}
		brands = append(brands, brand)
	}

	var genders []models.Gender
	for _, name := range []string{"Men", "Women", "Unisex"} {
		gender := models.Gender{Name: name}
		if err := db.FirstOrCreate(&gender, models.Gender{Name: name}).Error; err != nil {
			return err
		}
		genders = append(genders, gender)
	}

	colors := []models.Color{
		{Name: "White", Class: "bg-white", SelectedClass: "ring-gray-400"},
		{Name: "Gray", Class: "bg-gray-200", SelectedClass: "ring-gray-400"},
		{Name: "Black", Class: "bg-gray-900", SelectedClass: "ring-gray-900"},
	}
	for i := range colors {
		if err := db.FirstOrCreate(&colors[i], models.Color{Name: colors[i].Name}).Error; err != nil {
			return err
		}
	}

	var sizes []models.Size
	for _, name := range []string{"XS", "S", "M", "L", "XL"} {
		size := models.Size{Name: name, InStock: true}
		if err := db.FirstOrCreate(&size, models.Size{Name: name}).Error; err != nil {
			return err
		}
		sizes = append(sizes, size)
	}

	var highlights []models.Highlight
	for _, name := range []string{"Hand cut and sewn locally", "Ultra-soft 100% cotton", "Pre-washed and pre-shrunk"} {
		highlight := models.Highlight{Name: name}
		if err := db.FirstOrCreate(&highlight, models.Highlight{Name: name}).Error; err != nil {
			return err
		}
		highlights = append(highlights, highlight)
	}

	for i := 0; i < 20; i++ {
		product := fakers.ProductFaker(
			&categories[rand.Intn(len(categories))],
			&brands[rand.Intn(len(brands))],
			&genders[rand.Intn(len(genders))],
		)
		product.Colors = colors[:rand.Intn(len(colors))+1]
		product.Sizes = sizes
		product.Highlights = highlights[:rand.Intn(len(highlights))+1]

		if err := db.Create(product).Error; err != nil {
			return err
		}
	}

	log.Println("seeded reference data and 20 products")
	return nil
}
