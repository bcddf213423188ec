package repositories

import (
	"context"

	"github.com/storefront-go/storefront/app/models"
	"gorm.io/gorm"
)

type OrderRepositoryImpl interface {
	GetByUserID(ctx context.Context, userID string) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryImpl {
	return &orderRepository{db}
}

func (r *orderRepository) GetByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Preload("OrderItems.Color").
		Preload("OrderItems.Size").
		Preload("OrderItems.Image").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
