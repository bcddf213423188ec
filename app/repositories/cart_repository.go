package repositories

import (
	"context"

	"github.com/storefront-go/storefront/app/models"
	"gorm.io/gorm"
)

type CartRepositoryImpl interface {
	GetOrCreateByUserID(ctx context.Context, userID string) (*models.Cart, error)
	GetByUserID(ctx context.Context, userID string) (*models.Cart, error)
	GetWithItems(ctx context.Context, userID string) (*models.Cart, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepositoryImpl {
	return &cartRepository{db}
}

func (r *cartRepository) GetOrCreateByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Where(models.Cart{UserID: userID}).
		FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetWithItems loads the cart with every item's product, color, size and
// image, the shape both the cart page and checkout need.
func (r *cartRepository) GetWithItems(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.WithContext(ctx).
		Preload("CartItems").
		Preload("CartItems.Product").
		Preload("CartItems.Product.Images").
		Preload("CartItems.Color").
		Preload("CartItems.Size").
		Preload("CartItems.Image").
		Where("user_id = ?", userID).
		First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}
