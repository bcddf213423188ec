package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/storefront-go/storefront/app/models"
	"github.com/storefront-go/storefront/app/repositories"
	"gorm.io/gorm"
)

type PlaceOrderInput struct {
	Name           string `validate:"required,max=255"`
	Email          string `validate:"required,email,max=255"`
	Phone          string `validate:"required,max=255"`
	Address        string `validate:"required_if=DeliveryMethod delivery"`
	City           string `validate:"required_if=DeliveryMethod delivery"`
	PaymentMethod  string `validate:"required,oneof=cash card"`
	DeliveryMethod string `validate:"required,oneof=delivery pickup"`
}

type CheckoutService struct {
	db       *gorm.DB
	cartRepo repositories.CartRepositoryImpl
}

func NewCheckoutService(db *gorm.DB, cartRepo repositories.CartRepositoryImpl) *CheckoutService {
	return &CheckoutService{db: db, cartRepo: cartRepo}
}

// PlaceOrder converts the user's cart into an order in one transaction:
// order row, one order item per cart line with the product price frozen at
// this moment, then the cart items and cart are deleted. Any failure rolls
// the whole conversion back. Validation runs before anything is written.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID string, in PlaceOrderInput) (*models.Order, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetWithItems(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if len(cart.CartItems) == 0 {
		return nil, ErrCartEmpty
	}

	order := &models.Order{
		UserID:         userID,
		Status:         models.OrderStatusNew,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        optional(in.Address),
		City:           optional(in.City),
		PaymentMethod:  in.PaymentMethod,
		DeliveryMethod: in.DeliveryMethod,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for _, item := range cart.CartItems {
			if item.Product == nil {
				return fmt.Errorf("product %s no longer exists", item.ProductID)
			}
			orderItem := models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Price:     item.Product.Price,
				ColorID:   item.ColorID,
				SizeID:    item.SizeID,
				ImageID:   item.ImageID,
				Quantity:  item.Quantity,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return fmt.Errorf("create order item: %w", err)
			}
			order.OrderItems = append(order.OrderItems, orderItem)
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("clear cart items: %w", err)
		}
		if err := tx.Delete(&models.Cart{}, "id = ?", cart.ID).Error; err != nil {
			return fmt.Errorf("delete cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	return order, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
