package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/storefront-go/storefront/app/models"
	"github.com/storefront-go/storefront/app/repositories"
	"gorm.io/gorm"
)

type WishlistService struct {
	wishlistRepo repositories.WishlistRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewWishlistService(wishlistRepo repositories.WishlistRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo, productRepo: productRepo}
}

// Add saves a product for the user. Adding a product that is already saved
// is a no-op, so a user ends up with at most one row per product.
func (s *WishlistService) Add(ctx context.Context, userID, productID string) error {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("look up product: %w", err)
	}

	exists, err := s.wishlistRepo.Exists(ctx, userID, productID)
	if err != nil {
		return fmt.Errorf("check wishlist: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.wishlistRepo.Add(ctx, &models.Wishlist{UserID: userID, ProductID: productID}); err != nil {
		return fmt.Errorf("add wishlist entry: %w", err)
	}
	return nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID string) error {
	if err := s.wishlistRepo.DeleteByProduct(ctx, userID, productID); err != nil {
		return fmt.Errorf("remove wishlist entry: %w", err)
	}
	return nil
}
