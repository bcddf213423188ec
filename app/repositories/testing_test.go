package repositories

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storefront-go/storefront/app/models"
	"github.com/storefront-go/storefront/app/models/migrations"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
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

// seedProduct writes a product in the given category with minimal brand and
// gender rows, reusing them by name when they already exist.
func seedProduct(t *testing.T, db *gorm.DB, name, categoryName string, price int64, description string) *models.Product {
	t.Helper()

	var category models.Category
	require.NoError(t, db.Where(models.Category{Name: categoryName}).FirstOrCreate(&category).Error)
	var brand models.Brand
	require.NoError(t, db.Where(models.Brand{Name: "house brand"}).FirstOrCreate(&brand).Error)
	var gender models.Gender
	require.NoError(t, db.Where(models.Gender{Name: "unisex"}).FirstOrCreate(&gender).Error)

	product := &models.Product{
		Name:        name,
		Slug:        name,
		Description: description,
		Price:       decimal.NewFromInt(price),
		Quantity:    10,
		CategoryID:  category.ID,
		BrandID:     brand.ID,
		GenderID:    gender.ID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
