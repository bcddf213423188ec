package repositories

import (
	"context"
	"strings"

	"github.com/storefront-go/storefront/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// CatalogFilter narrows the product listing. Zero values mean "no filter".
type CatalogFilter struct {
	CategoryName string
	Sort         string
	Search       string
}

type ProductRepositoryImpl interface {
	Browse(ctx context.Context, filter CatalogFilter) ([]models.Product, error)
	Search(ctx context.Context, keyword string) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetDetail(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	SyncColors(ctx context.Context, product *models.Product, ids []string) error
	SyncSizes(ctx context.Context, product *models.Product, ids []string) error
	SyncHighlights(ctx context.Context, product *models.Product, ids []string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func withCatalogPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Brand").
		Preload("Gender").
		Preload("Colors").
		Preload("Sizes").
		Preload("Highlights").
		Preload("Images")
}

// applySearch qualifies the columns so the clause stays valid when Browse
// has joined categories, which carries its own name column.
func applySearch(db *gorm.DB, keyword string) *gorm.DB {
	pattern := "%" + strings.ToLower(keyword) + "%"
	return db.Where("LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ?", pattern, pattern)
}

func (p *productRepository) Browse(ctx context.Context, filter CatalogFilter) ([]models.Product, error) {
	query := withCatalogPreloads(p.db.WithContext(ctx).Model(&models.Product{}))

	if filter.CategoryName != "" {
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.name = ?", filter.CategoryName)
	}

	switch filter.Sort {
	case SortPriceAsc:
		query = query.Order("price")
	case SortPriceDesc:
		query = query.Order("price DESC")
	}

	if filter.Search != "" {
		query = applySearch(query, filter.Search)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	query := p.db.WithContext(ctx).Model(&models.Product{})
	if keyword != "" {
		query = applySearch(query, keyword)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := withCatalogPreloads(p.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetDetail(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := withCatalogPreloads(p.db.WithContext(ctx)).
		Preload("Reviews").
		Preload("Reviews.User").
		Where("id = ?", id).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Create and Update write the product row only. Colors, sizes and
// highlights go through the Sync methods, images through the image
// repository, so association writes are omitted here.
func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

// SyncColors replaces the product's color set with exactly the given ids.
func (p *productRepository) SyncColors(ctx context.Context, product *models.Product, ids []string) error {
	var colors []models.Color
	if err := p.db.WithContext(ctx).Where("id IN ?", ids).Find(&colors).Error; err != nil {
		return err
	}
	return p.db.WithContext(ctx).Model(product).Association("Colors").Replace(&colors)
}

func (p *productRepository) SyncSizes(ctx context.Context, product *models.Product, ids []string) error {
	var sizes []models.Size
	if err := p.db.WithContext(ctx).Where("id IN ?", ids).Find(&sizes).Error; err != nil {
		return err
	}
	return p.db.WithContext(ctx).Model(product).Association("Sizes").Replace(&sizes)
}

func (p *productRepository) SyncHighlights(ctx context.Context, product *models.Product, ids []string) error {
	var highlights []models.Highlight
	if err := p.db.WithContext(ctx).Where("id IN ?", ids).Find(&highlights).Error; err != nil {
		return err
	}
	return p.db.WithContext(ctx).Model(product).Association("Highlights").Replace(&highlights)
}
