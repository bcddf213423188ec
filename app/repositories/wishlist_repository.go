package repositories

import (
	"context"

	"github.com/storefront-go/storefront/app/models"
	"gorm.io/gorm"
)

type WishlistRepositoryImpl interface {
	GetByUserID(ctx context.Context, userID string) ([]models.Wishlist, error)
	Exists(ctx context.Context, userID, productID string) (bool, error)
	Add(ctx context.Context, wishlist *models.Wishlist) error
	DeleteByProduct(ctx context.Context, userID, productID string) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepositoryImpl {
	return &wishlistRepository{db}
}

func (r *wishlistRepository) GetByUserID(ctx context.Context, userID string) ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Images").
		Where("user_id = ?", userID).
		Find(&wishlists).Error
	return wishlists, err
}

func (r *wishlistRepository) Exists(ctx context.Context, userID, productID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Wishlist{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *wishlistRepository) Add(ctx context.Context, wishlist *models.Wishlist) error {
	return r.db.WithContext(ctx).Create(wishlist).Error
}

func (r *wishlistRepository) DeleteByProduct(ctx context.Context, userID, productID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.Wishlist{}).Error
}
