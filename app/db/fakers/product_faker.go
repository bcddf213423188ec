package fakers

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"github.com/storefront-go/storefront/app/models"
)

var samplePaths = []string{
	"/images/samples/tee.jpg",
	"/images/samples/hoodie.jpg",
	"/images/samples/sneaker.jpg",
}

func ProductFaker(category *models.Category, brand *models.Brand, gender *models.Gender) *models.Product {
	name := faker.Word() + " " + faker.Word()
	productID := uuid.New().String()

	numImages := rand.Intn(3) + 1
	images := make([]models.Image, numImages)
	for i := 0; i < numImages; i++ {
		images[i] = models.Image{
			ProductID: productID,
			Path:      samplePaths[rand.Intn(len(samplePaths))],
		}
	}

	return &models.Product{
		ID:          productID,
		Name:        name,
		Slug:        slug.Make(name + "-" + uuid.NewString()[:6]),
		Description: faker.Paragraph(),
		Price:       decimal.NewFromInt(int64(rand.Intn(200) + 10)),
		Quantity:    rand.Intn(50),
		CategoryID:  category.ID,
		BrandID:     brand.ID,
		GenderID:    gender.ID,
		Images:      images,
	}
}
