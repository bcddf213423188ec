package repositories

import (
	"context"

	"github.com/storefront-go/storefront/app/models"
	"gorm.io/gorm"
)

// CatalogRepositoryImpl serves the read-mostly reference data the product
// forms and listing pages need.
type CatalogRepositoryImpl interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Brands(ctx context.Context) ([]models.Brand, error)
	Genders(ctx context.Context) ([]models.Gender, error)
	Colors(ctx context.Context) ([]models.Color, error)
	Sizes(ctx context.Context) ([]models.Size, error)
	Highlights(ctx context.Context) ([]models.Highlight, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepositoryImpl {
	return &catalogRepository{db}
}

func (c *catalogRepository) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := c.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}

func (c *catalogRepository) Brands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	err := c.db.WithContext(ctx).Find(&brands).Error
	return brands, err
}

func (c *catalogRepository) Genders(ctx context.Context) ([]models.Gender, error) {
	var genders []models.Gender
	err := c.db.WithContext(ctx).Find(&genders).Error
	return genders, err
}

func (c *catalogRepository) Colors(ctx context.Context) ([]models.Color, error) {
	var colors []models.Color
	err := c.db.WithContext(ctx).Find(&colors).Error
	return colors, err
}

func (c *catalogRepository) Sizes(ctx context.Context) ([]models.Size, error) {
	var sizes []models.Size
	err := c.db.WithContext(ctx).Find(&sizes).Error
	return sizes, err
}

func (c *catalogRepository) Highlights(ctx context.Context) ([]models.Highlight, error) {
	var highlights []models.Highlight
	err := c.db.WithContext(ctx).Find(&highlights).Error
	return highlights, err
}
