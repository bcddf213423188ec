package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storefront-go/storefront/app/models"
	"github.com/storefront-go/storefront/app/repositories"
	"github.com/storefront-go/storefront/app/utils/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductService(t *testing.T, db *gorm.DB) (*ProductService, string) {
	t.Helper()
	dir := t.TempDir()
	svc := NewProductService(
		db,
		repositories.NewProductRepository(db),
		repositories.NewImageRepository(db),
		storage.NewPublicStorage(dir, "/images"),
	)
	return svc, dir
}

func referenceRows(t *testing.T, db *gorm.DB) (category models.Category, brand models.Brand, gender models.Gender) {
	t.Helper()
	category = models.Category{Name: "Shirts"}
	require.NoError(t, db.Create(&category).Error)
	brand = models.Brand{Name: "Northwind"}
	require.NoError(t, db.Create(&brand).Error)
	gender = models.Gender{Name: "Unisex"}
	require.NoError(t, db.Create(&gender).Error)
	return
}

func TestCreateProductPersistsAssociations(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newProductService(t, db)
	ctx := context.Background()

	category, brand, gender := referenceRows(t, db)
	black := createColor(t, db, "black")
	white := createColor(t, db, "white")
	size := createSize(t, db, "M")
	highlight := createHighlight(t, db, "Pre-washed")

	product, err := svc.Create(ctx, ProductInput{
		Name:         "Linen Shirt",
		Description:  "A very nice shirt",
		CategoryID:   category.ID,
		BrandID:      brand.ID,
		GenderID:     gender.ID,
		Quantity:     5,
		Price:        decimal.NewFromInt(45),
		ColorIDs:     []string{black.ID, white.ID},
		SizeIDs:      []string{size.ID},
		HighlightIDs: []string{highlight.ID},
		ImagePaths:   []string{"/images/linen.jpg"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.Slug)

	stored, err := repositories.NewProductRepository(db).GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Linen Shirt", stored.Name)
	assert.Len(t, stored.Colors, 2)
	assert.Len(t, stored.Sizes, 1)
	assert.Len(t, stored.Highlights, 1)
	require.Len(t, stored.Images, 1)
	assert.Equal(t, "/images/linen.jpg", stored.Images[0].Path)
}

func TestCreateProductSlugsAreUnique(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newProductService(t, db)
	ctx := context.Background()

	category, brand, gender := referenceRows(t, db)
	in := ProductInput{
		Name:       "Linen Shirt",
		CategoryID: category.ID,
		BrandID:    brand.ID,
		GenderID:   gender.ID,
		Price:      decimal.NewFromInt(45),
	}

	first, err := svc.Create(ctx, in)
	require.NoError(t, err)
	second, err := svc.Create(ctx, in)
	require.NoError(t, err)

	assert.NotEqual(t, first.Slug, second.Slug)
}

func TestUpdateReplacesAssociationSet(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newProductService(t, db)
	ctx := context.Background()

	category, brand, gender := referenceRows(t, db)
	black := createColor(t, db, "black")
	white := createColor(t, db, "white")
	red := createColor(t, db, "red")

	in := ProductInput{
		Name:       "Linen Shirt",
		CategoryID: category.ID,
		BrandID:    brand.ID,
		GenderID:   gender.ID,
		Price:      decimal.NewFromInt(45),
		ColorIDs:   []string{black.ID, white.ID},
	}
	product, err := svc.Create(ctx, in)
	require.NoError(t, err)

	in.ColorIDs = []string{red.ID}
	_, err = svc.Update(ctx, product.ID, in)
	require.NoError(t, err)

	stored, err := repositories.NewProductRepository(db).GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, stored.Colors, 1)
	assert.Equal(t, red.ID, stored.Colors[0].ID)
}

func TestUpdateNilSliceKeepsAssociations(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newProductService(t, db)
	ctx := context.Background()

	category, brand, gender := referenceRows(t, db)
	black := createColor(t, db, "black")
	white := createColor(t, db, "white")

	in := ProductInput{
		Name:       "Linen Shirt",
		CategoryID: category.ID,
		BrandID:    brand.ID,
		GenderID:   gender.ID,
		Price:      decimal.NewFromInt(45),
		ColorIDs:   []string{black.ID, white.ID},
	}
	product, err := svc.Create(ctx, in)
	require.NoError(t, err)

	in.ColorIDs = nil
	in.Name = "Linen Shirt v2"
	_, err = svc.Update(ctx, product.ID, in)
	require.NoError(t, err)

	stored, err := repositories.NewProductRepository(db).GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Linen Shirt v2", stored.Name)
	assert.Len(t, stored.Colors, 2)
}

func TestUpdateEmptySliceClearsAssociations(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newProductService(t, db)
	ctx := context.Background()

	category, brand, gender := referenceRows(t, db)
	black := createColor(t, db, "black")

	in := ProductInput{
		Name:       "Linen Shirt",
		CategoryID: category.ID,
		BrandID:    brand.ID,
		GenderID:   gender.ID,
		Price:      decimal.NewFromInt(45),
		ColorIDs:   []string{black.ID},
	}
	product, err := svc.Create(ctx, in)
	require.NoError(t, err)

	in.ColorIDs = []string{}
	_, err = svc.Update(ctx, product.ID, in)
	require.NoError(t, err)

	stored, err := repositories.NewProductRepository(db).GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Colors)
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newProductService(t, db)

	category, brand, gender := referenceRows(t, db)

	_, err := svc.Create(context.Background(), ProductInput{
		Name:       "Linen Shirt",
		CategoryID: category.ID,
		BrandID:    brand.ID,
		GenderID:   gender.ID,
		Price:      decimal.NewFromInt(-1),
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "price")
}

func TestCreateRequiresReferenceIDs(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newProductService(t, db)

	_, err := svc.Create(context.Background(), ProductInput{Name: "Linen Shirt"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "category_id")
	assert.Contains(t, verr.Fields, "brand_id")
	assert.Contains(t, verr.Fields, "gender_id")
}

func TestUpdateUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newProductService(t, db)

	category, brand, gender := referenceRows(t, db)

	_, err := svc.Update(context.Background(), "missing", ProductInput{
		Name:       "Linen Shirt",
		CategoryID: category.ID,
		BrandID:    brand.ID,
		GenderID:   gender.ID,
		Price:      decimal.NewFromInt(45),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCascadesAcrossDependents(t *testing.T) {
	db := newTestDB(t)
	svc, dir := newProductService(t, db)
	ctx := context.Background()

	user := createUser(t, db, "shopper@example.com")
	product := createProduct(t, db, "linen-shirt", 45)
	black := createColor(t, db, "black")
	require.NoError(t, db.Model(product).Association("Colors").Append(black))

	// The image row points at a real file on disk.
	filePath := filepath.Join(dir, "linen.jpg")
	require.NoError(t, os.WriteFile(filePath, []byte("jpeg bytes"), 0o644))
	createImage(t, db, product.ID, "/images/linen.jpg")

	cart := &models.Cart{UserID: user.ID}
	require.NoError(t, db.Create(cart).Error)
	require.NoError(t, db.Create(&models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}).Error)

	require.NoError(t, db.Create(&models.Review{ProductID: product.ID, UserID: user.ID, Rating: 4}).Error)
	require.NoError(t, db.Create(&models.Wishlist{UserID: user.ID, ProductID: product.ID}).Error)

	order := &models.Order{
		UserID: user.ID, Status: models.OrderStatusNew,
		Name: "Ada", Email: "ada@example.com", Phone: "555-0100",
		PaymentMethod: models.PaymentMethodCash, DeliveryMethod: models.DeliveryMethodPickup,
	}
	require.NoError(t, db.Create(order).Error)
	require.NoError(t, db.Create(&models.OrderItem{
		OrderID: order.ID, ProductID: product.ID,
		Price: decimal.NewFromInt(45), Quantity: 1,
	}).Error)

	require.NoError(t, svc.Delete(ctx, product.ID))

	assert.EqualValues(t, 0, count(t, db, &models.CartItem{}, "product_id = ?", product.ID))
	assert.EqualValues(t, 0, count(t, db, &models.Image{}, "product_id = ?", product.ID))
	assert.EqualValues(t, 0, count(t, db, &models.Review{}, "product_id = ?", product.ID))
	assert.EqualValues(t, 0, count(t, db, &models.OrderItem{}, "product_id = ?", product.ID))
	assert.EqualValues(t, 0, count(t, db, &models.Wishlist{}, "product_id = ?", product.ID))

	var joinRows int64
	require.NoError(t, db.Table("product_colors").Where("product_id = ?", product.ID).Count(&joinRows).Error)
	assert.EqualValues(t, 0, joinRows)

	err := db.First(&models.Product{}, "id = ?", product.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// The order itself survives, only its line for this product is gone.
	assert.EqualValues(t, 1, count(t, db, &models.Order{}, ""))

	_, err = os.Stat(filePath)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newProductService(t, db)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
