package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"github.com/storefront-go/storefront/app/models"
	"github.com/storefront-go/storefront/app/repositories"
	"github.com/storefront-go/storefront/app/utils/storage"
	"gorm.io/gorm"
)

// ProductInput is the admin create/update field set. A nil id slice means
// "leave the association alone"; an empty one clears it. ImagePaths are
// upload paths already persisted by the storage collaborator.
type ProductInput struct {
	Name         string `validate:"required,max=255"`
	Description  string
	CategoryID   string `validate:"required"`
	BrandID      string `validate:"required"`
	GenderID     string `validate:"required"`
	Quantity     int    `validate:"min=0"`
	Price        decimal.Decimal
	ColorIDs     []string
	SizeIDs      []string
	HighlightIDs []string
	ImagePaths   []string
}

type ProductService struct {
	db          *gorm.DB
	productRepo repositories.ProductRepositoryImpl
	imageRepo   repositories.ImageRepositoryImpl
	store       storage.Storage
}

func NewProductService(
	db *gorm.DB,
	productRepo repositories.ProductRepositoryImpl,
	imageRepo repositories.ImageRepositoryImpl,
	store storage.Storage,
) *ProductService {
	return &ProductService{
		db:          db,
		productRepo: productRepo,
		imageRepo:   imageRepo,
		store:       store,
	}
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := s.validateProduct(in); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        in.Name,
		Slug:        slug.Make(in.Name + "-" + uuid.NewString()[:6]),
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		CategoryID:  in.CategoryID,
		BrandID:     in.BrandID,
		GenderID:    in.GenderID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if err := s.attachImages(ctx, product.ID, in.ImagePaths); err != nil {
		return nil, err
	}
	if err := s.syncAssociations(ctx, product, in); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) (*models.Product, error) {
	if err := s.validateProduct(in); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	if err := s.attachImages(ctx, product.ID, in.ImagePaths); err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Quantity = in.Quantity
	product.CategoryID = in.CategoryID
	product.BrandID = in.BrandID
	product.GenderID = in.GenderID
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	if err := s.syncAssociations(ctx, product, in); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes the product and every dependent row: cart lines, image
// rows, reviews, order items and wishlist entries, all in one transaction.
// The image files themselves are removed after commit since file deletion
// is not transactional.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get product: %w", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.CartItem{},
			&models.Image{},
			&models.Review{},
			&models.OrderItem{},
			&models.Wishlist{},
		} {
			if err := tx.Where("product_id = ?", product.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(product).Association("Colors").Clear(); err != nil {
			return err
		}
		if err := tx.Model(product).Association("Sizes").Clear(); err != nil {
			return err
		}
		if err := tx.Model(product).Association("Highlights").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", product.ID).Error
	})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	for _, image := range product.Images {
		if err := s.store.Remove(image.Path); err != nil {
			log.Printf("product delete: failed to remove image file %s: %v", image.Path, err)
		}
	}
	return nil
}

func (s *ProductService) validateProduct(in ProductInput) error {
	if err := validateInput(in); err != nil {
		return err
	}
	if in.Price.IsNegative() {
		return &ValidationError{Fields: map[string]string{"price": "must be at least 0"}}
	}
	return nil
}

func (s *ProductService) attachImages(ctx context.Context, productID string, paths []string) error {
	for _, p := range paths {
		image := &models.Image{ProductID: productID, Path: p}
		if err := s.imageRepo.Create(ctx, image); err != nil {
			return fmt.Errorf("create image row: %w", err)
		}
	}
	return nil
}

func (s *ProductService) syncAssociations(ctx context.Context, product *models.Product, in ProductInput) error {
	if in.ColorIDs != nil {
		if err := s.productRepo.SyncColors(ctx, product, in.ColorIDs); err != nil {
			return fmt.Errorf("sync colors: %w", err)
		}
	}
	if in.SizeIDs != nil {
		if err := s.productRepo.SyncSizes(ctx, product, in.SizeIDs); err != nil {
			return fmt.Errorf("sync sizes: %w", err)
		}
	}
	if in.HighlightIDs != nil {
		if err := s.productRepo.SyncHighlights(ctx, product, in.HighlightIDs); err != nil {
			return fmt.Errorf("sync highlights: %w", err)
		}
	}
	return nil
}
