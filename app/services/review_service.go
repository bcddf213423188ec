package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/storefront-go/storefront/app/models"
	"github.com/storefront-go/storefront/app/repositories"
	"gorm.io/gorm"
)

type ReviewInput struct {
	ProductID string `validate:"required"`
	Rating    int    `validate:"required,min=1,max=5"`
	Comment   string
}

type ReviewService struct {
	reviewRepo  repositories.ReviewRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
}

func NewReviewService(reviewRepo repositories.ReviewRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

func (s *ReviewService) Create(ctx context.Context, userID string, in ReviewInput) (*models.Review, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.GetByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("look up product: %w", err)
	}

	review := &models.Review{
		ProductID: in.ProductID,
		UserID:    userID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// Update rewrites a review's fields. Only the author may edit it.
func (s *ReviewService) Update(ctx context.Context, userID, reviewID string, in ReviewInput) (*models.Review, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	review, err := s.getOwnedReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	review.ProductID = in.ProductID
	review.Rating = in.Rating
	review.Comment = in.Comment
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, userID, reviewID string) error {
	review, err := s.getOwnedReview(ctx, userID, reviewID)
	if err != nil {
		return err
	}
	if err := s.reviewRepo.Delete(ctx, review.ID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

func (s *ReviewService) getOwnedReview(ctx context.Context, userID, reviewID string) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review.UserID != userID {
		return nil, ErrForbidden
	}
	return review, nil
}
