package repositories

import (
	"context"

	"github.com/storefront-go/storefront/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemRepositoryImpl interface {
	FindVariant(ctx context.Context, cartID, productID string, colorID, sizeID, imageID *string) (*models.CartItem, error)
	GetByID(ctx context.Context, id string) (*models.CartItem, error)
	Add(ctx context.Context, item *models.CartItem) error
	Update(ctx context.Context, item *models.CartItem) error
	Delete(ctx context.Context, id string) error
}

type cartItemRepository struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepositoryImpl {
	return &cartItemRepository{db}
}

func whereNullable(db *gorm.DB, column string, id *string) *gorm.DB {
	if id == nil {
		return db.Where(column + " IS NULL")
	}
	return db.Where(column+" = ?", *id)
}

// FindVariant matches a line item on the full variant key, treating an
// unset color/size/image as its own value rather than a wildcard.
func (r *cartItemRepository) FindVariant(ctx context.Context, cartID, productID string, colorID, sizeID, imageID *string) (*models.CartItem, error) {
	query := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID)
	query = whereNullable(query, "color_id", colorID)
	query = whereNullable(query, "size_id", sizeID)
	query = whereNullable(query, "image_id", imageID)

	var item models.CartItem
	if err := query.First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByID loads the item with its cart so callers can check ownership.
func (r *cartItemRepository) GetByID(ctx context.Context, id string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Cart").
		First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) Add(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartItemRepository) Update(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error
}

func (r *cartItemRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.CartItem{}, "id = ?", id).Error
}
