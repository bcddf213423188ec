package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/storefront-go/storefront/app/models"
	"github.com/storefront-go/storefront/app/repositories"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ProductID string `validate:"required"`
	Quantity  int    `validate:"required,min=1"`
	ColorID   *string
	SizeID    *string
	ImageID   *string
}

type CartService struct {
	cartRepo     repositories.CartRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	imageRepo    repositories.ImageRepositoryImpl
}

func NewCartService(
	cartRepo repositories.CartRepositoryImpl,
	cartItemRepo repositories.CartItemRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	imageRepo repositories.ImageRepositoryImpl,
) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		imageRepo:    imageRepo,
	}
}

// AddItem puts a product variant into the user's cart. A line matching the
// exact (product, color, size, image) combination gets its quantity bumped;
// anything else becomes a new line carrying the product's first image as a
// display hint. There is no upper bound against stock.
func (s *CartService) AddItem(ctx context.Context, userID string, in AddItemInput) (*models.Cart, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	if _, err := s.productRepo.GetByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("look up product: %w", err)
	}

	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get or create cart: %w", err)
	}

	// Resolve the image before the variant lookup so that repeated adds
	// without an explicit pick land on the same line. The product's first
	// image stands in as the display hint.
	imageID := in.ImageID
	if imageID == nil {
		image, err := s.imageRepo.FirstByProductID(ctx, in.ProductID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("look up product image: %w", err)
		}
		if image != nil {
			imageID = &image.ID
		}
	}

	existing, err := s.cartItemRepo.FindVariant(ctx, cart.ID, in.ProductID, in.ColorID, in.SizeID, imageID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("look up cart item: %w", err)
	}

	if existing != nil {
		existing.Quantity += in.Quantity
		if err := s.cartItemRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update cart item: %w", err)
		}
	} else {
		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: in.ProductID,
			ColorID:   in.ColorID,
			SizeID:    in.SizeID,
			ImageID:   imageID,
			Quantity:  in.Quantity,
		}
		if err := s.cartItemRepo.Add(ctx, item); err != nil {
			return nil, fmt.Errorf("add cart item: %w", err)
		}
	}

	return s.cartRepo.GetWithItems(ctx, userID)
}

// UpdateItemQuantity sets a line item to an exact quantity. The caller must
// own the cart the item belongs to.
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	if quantity < 1 {
		return &ValidationError{Fields: map[string]string{"quantity": "must be at least 1"}}
	}

	item, err := s.getOwnedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	item.Quantity = quantity
	if err := s.cartItemRepo.Update(ctx, item); err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	return nil
}

// RemoveItem deletes a line item after the same ownership check.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) error {
	item, err := s.getOwnedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	if err := s.cartItemRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// GetCart returns the user's cart with items fully loaded, or nil when the
// user has no cart yet.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetWithItems(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) getOwnedItem(ctx context.Context, userID, itemID string) (*models.CartItem, error) {
	item, err := s.cartItemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	if item.Cart == nil || item.Cart.UserID != userID {
		return nil, ErrForbidden
	}
	return item, nil
}
