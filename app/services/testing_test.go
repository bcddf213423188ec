package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storefront-go/storefront/app/models"
	"github.com/storefront-go/storefront/app/models/migrations"
	"github.com/storefront-go/storefront/app/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// newTestDB opens a fresh in-memory database with the full schema. Each test
// gets its own database; cache=shared keeps it alive across connections for
// the lifetime of the open handle.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test User", Email: email, Password: "secret"}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createProduct builds a product with its own category, brand and gender so
// tests do not share reference rows. The name doubles as the slug.
func createProduct(t *testing.T, db *gorm.DB, name string, price int64) *models.Product {
	t.Helper()

	category := &models.Category{Name: name + " category"}
	require.NoError(t, db.Create(category).Error)
	brand := &models.Brand{Name: name + " brand"}
	require.NoError(t, db.Create(brand).Error)
	gender := &models.Gender{Name: name + " gender"}
	require.NoError(t, db.Create(gender).Error)

	product := &models.Product{
		Name:        name,
		Slug:        name,
		Description: "test product",
		Price:       decimal.NewFromInt(price),
		Quantity:    10,
		CategoryID:  category.ID,
		BrandID:     brand.ID,
		GenderID:    gender.ID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func createImage(t *testing.T, db *gorm.DB, productID, path string) *models.Image {
	t.Helper()
	image := &models.Image{ProductID: productID, Path: path}
	require.NoError(t, db.Create(image).Error)
	return image
}

func createColor(t *testing.T, db *gorm.DB, name string) *models.Color {
	t.Helper()
	color := &models.Color{Name: name, Class: "bg-" + name, SelectedClass: "ring-" + name}
	require.NoError(t, db.Create(color).Error)
	return color
}

func createSize(t *testing.T, db *gorm.DB, name string) *models.Size {
	t.Helper()
	size := &models.Size{Name: name, InStock: true}
	require.NoError(t, db.Create(size).Error)
	return size
}

func createHighlight(t *testing.T, db *gorm.DB, name string) *models.Highlight {
	t.Helper()
	highlight := &models.Highlight{Name: name}
	require.NoError(t, db.Create(highlight).Error)
	return highlight
}

func count(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	tx := db.Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	require.NoError(t, tx.Count(&n).Error)
	return n
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(
		repositories.NewCartRepository(db),
		repositories.NewCartItemRepository(db),
		repositories.NewProductRepository(db),
		repositories.NewImageRepository(db),
	)
}

func newCheckoutService(db *gorm.DB) *CheckoutService {
	return NewCheckoutService(db, repositories.NewCartRepository(db))
}
