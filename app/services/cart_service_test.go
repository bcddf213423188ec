package services

import (
	"context"
	"testing"

	"github.com/storefront-go/storefront/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemCreatesLineWithDisplayImage(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := createUser(t, db, "shopper@example.com")
	product := createProduct(t, db, "linen-shirt", 45)
	image := createImage(t, db, product.ID, "/images/linen.jpg")

	cart, err := svc.AddItem(ctx, user.ID, AddItemInput{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, cart.CartItems, 1)
	item := cart.CartItems[0]
	assert.Equal(t, product.ID, item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.Nil(t, item.ColorID)
	assert.Nil(t, item.SizeID)
	require.NotNil(t, item.ImageID)
	assert.Equal(t, image.ID, *item.ImageID)
}

func TestAddItemSameVariantIncrementsQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := createUser(t, db, "shopper@example.com")
	product := createProduct(t, db, "linen-shirt", 45)
	createImage(t, db, product.ID, "/images/linen.jpg")
	color := createColor(t, db, "black")

	_, err := svc.AddItem(ctx, user.ID, AddItemInput{ProductID: product.ID, Quantity: 2, ColorID: &color.ID})
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, user.ID, AddItemInput{ProductID: product.ID, Quantity: 3, ColorID: &color.ID})
	require.NoError(t, err)

	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, 5, cart.CartItems[0].Quantity)
	assert.EqualValues(t, 1, count(t, db, &models.CartItem{}, ""))
}

func TestAddItemDistinctVariantsStaySeparate(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := createUser(t, db, "shopper@example.com")
	product := createProduct(t, db, "linen-shirt", 45)
	black := createColor(t, db, "black")
	white := createColor(t, db, "white")

	_, err := svc.AddItem(ctx, user.ID, AddItemInput{ProductID: product.ID, Quantity: 1, ColorID: &black.ID})
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, user.ID, AddItemInput{ProductID: product.ID, Quantity: 1, ColorID: &white.ID})
	require.NoError(t, err)

	assert.Len(t, cart.CartItems, 2)
}

func TestAddItemWithoutColorDoesNotMatchColoredLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := createUser(t, db, "shopper@example.com")
	product := createProduct(t, db, "linen-shirt", 45)
	black := createColor(t, db, "black")

	_, err := svc.AddItem(ctx, user.ID, AddItemInput{ProductID: product.ID, Quantity: 1, ColorID: &black.ID})
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, user.ID, AddItemInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	assert.Len(t, cart.CartItems, 2)
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	user := createUser(t, db, "shopper@example.com")

	_, err := svc.AddItem(context.Background(), user.ID, AddItemInput{ProductID: "missing", Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 0, count(t, db, &models.Cart{}, ""))
}

func TestAddItemRejectsZeroQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	user := createUser(t, db, "shopper@example.com")
	product := createProduct(t, db, "linen-shirt", 45)

	_, err := svc.AddItem(context.Background(), user.ID, AddItemInput{ProductID: product.ID, Quantity: 0})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "quantity")
	assert.EqualValues(t, 0, count(t, db, &models.CartItem{}, ""))
}

func TestUpdateItemQuantitySetsExactValue(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := createUser(t, db, "shopper@example.com")
	product := createProduct(t, db, "linen-shirt", 45)

	cart, err := svc.AddItem(ctx, user.ID, AddItemInput{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateItemQuantity(ctx, user.ID, cart.CartItems[0].ID, 7))

	updated, err := svc.GetCart(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, updated.CartItems, 1)
	assert.Equal(t, 7, updated.CartItems[0].Quantity)
}

func TestUpdateItemQuantityRejectsBelowOne(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := createUser(t, db, "shopper@example.com")
	product := createProduct(t, db, "linen-shirt", 45)
	cart, err := svc.AddItem(ctx, user.ID, AddItemInput{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	err = svc.UpdateItemQuantity(ctx, user.ID, cart.CartItems[0].ID, 0)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateItemQuantityOtherUsersItemForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	owner := createUser(t, db, "owner@example.com")
	intruder := createUser(t, db, "intruder@example.com")
	product := createProduct(t, db, "linen-shirt", 45)

	cart, err := svc.AddItem(ctx, owner.ID, AddItemInput{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	itemID := cart.CartItems[0].ID

	err = svc.UpdateItemQuantity(ctx, intruder.ID, itemID, 99)
	assert.ErrorIs(t, err, ErrForbidden)

	unchanged, err := svc.GetCart(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, unchanged.CartItems[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := createUser(t, db, "shopper@example.com")
	product := createProduct(t, db, "linen-shirt", 45)
	cart, err := svc.AddItem(ctx, user.ID, AddItemInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, user.ID, cart.CartItems[0].ID))
	assert.EqualValues(t, 0, count(t, db, &models.CartItem{}, ""))
}

func TestRemoveItemOtherUsersItemForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	owner := createUser(t, db, "owner@example.com")
	intruder := createUser(t, db, "intruder@example.com")
	product := createProduct(t, db, "linen-shirt", 45)
	cart, err := svc.AddItem(ctx, owner.ID, AddItemInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	err = svc.RemoveItem(ctx, intruder.ID, cart.CartItems[0].ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.EqualValues(t, 1, count(t, db, &models.CartItem{}, ""))
}

func TestRemoveItemUnknown(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	user := createUser(t, db, "shopper@example.com")

	err := svc.RemoveItem(context.Background(), user.ID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCartWithoutCartReturnsNil(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	user := createUser(t, db, "shopper@example.com")

	cart, err := svc.GetCart(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, cart)
}

func TestAddItemProductWithoutImagesLeavesImageNil(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := createUser(t, db, "shopper@example.com")
	product := createProduct(t, db, "bare-product", 10)

	cart, err := svc.AddItem(ctx, user.ID, AddItemInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	require.Len(t, cart.CartItems, 1)
	assert.Nil(t, cart.CartItems[0].ImageID)

	// A second identical add still lands on the same line.
	cart, err = svc.AddItem(ctx, user.ID, AddItemInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, 2, cart.CartItems[0].Quantity)
}
