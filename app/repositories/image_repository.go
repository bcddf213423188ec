package repositories

import (
	"context"

	"github.com/storefront-go/storefront/app/models"
	"gorm.io/gorm"
)

type ImageRepositoryImpl interface {
	FirstByProductID(ctx context.Context, productID string) (*models.Image, error)
	GetByProductID(ctx context.Context, productID string) ([]models.Image, error)
	Create(ctx context.Context, image *models.Image) error
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepositoryImpl {
	return &imageRepository{db}
}

// FirstByProductID returns the product's first image, used as the display
// hint on new cart lines. Returns gorm.ErrRecordNotFound when the product
// has no images.
func (r *imageRepository) FirstByProductID(ctx context.Context, productID string) (*models.Image, error) {
	var image models.Image
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at").
		First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) GetByProductID(ctx context.Context, productID string) ([]models.Image, error) {
	var images []models.Image
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&images).Error
	return images, err
}

func (r *imageRepository) Create(ctx context.Context, image *models.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}
