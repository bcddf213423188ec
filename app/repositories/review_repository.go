package repositories

import (
	"context"

	"github.com/storefront-go/storefront/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepositoryImpl interface {
	List(ctx context.Context, productID string) ([]models.Review, error)
	GetByID(ctx context.Context, id string) (*models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id string) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepositoryImpl {
	return &reviewRepository{db}
}

// List returns all reviews, narrowed to one product when productID is set.
func (r *reviewRepository) List(ctx context.Context, productID string) ([]models.Review, error) {
	query := r.db.WithContext(ctx).
		Preload("Product").
		Preload("User")
	if productID != "" {
		query = query.Where("product_id = ?", productID)
	}

	var reviews []models.Review
	err := query.Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("User").
		First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Review{}, "id = ?", id).Error
}
