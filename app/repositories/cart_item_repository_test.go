package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/storefront-go/storefront/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFindVariantTreatsNullAsDistinct(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartItemRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Test", Email: "t@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	product := seedProduct(t, db, "linen shirt", "Shirts", 45, "")
	color := &models.Color{Name: "black"}
	require.NoError(t, db.Create(color).Error)

	cart := &models.Cart{UserID: user.ID}
	require.NoError(t, db.Create(cart).Error)

	plain := &models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}
	require.NoError(t, repo.Add(ctx, plain))
	colored := &models.CartItem{CartID: cart.ID, ProductID: product.ID, ColorID: &color.ID, Quantity: 1}
	require.NoError(t, repo.Add(ctx, colored))

	found, err := repo.FindVariant(ctx, cart.ID, product.ID, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, plain.ID, found.ID)

	found, err = repo.FindVariant(ctx, cart.ID, product.ID, &color.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, colored.ID, found.ID)

	otherColor := "nonexistent"
	_, err = repo.FindVariant(ctx, cart.ID, product.ID, &otherColor, nil, nil)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestGetOrCreateByUserIDIsStable(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Test", Email: "t@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	first, err := repo.GetOrCreateByUserID(ctx, user.ID)
	require.NoError(t, err)
	second, err := repo.GetOrCreateByUserID(ctx, user.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var n int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}
