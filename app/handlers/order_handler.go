package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/storefront-go/storefront/app/middlewares"
	"github.com/storefront-go/storefront/app/models"
	"github.com/storefront-go/storefront/app/repositories"
	"github.com/storefront-go/storefront/app/services"
	"github.com/storefront-go/storefront/app/utils/format"
	"github.com/storefront-go/storefront/app/utils/renderer"
)

type OrderHandler struct {
	orderRepo   repositories.OrderRepositoryImpl
	cartSvc     *services.CartService
	checkoutSvc *services.CheckoutService
	render      *renderer.Renderer
}

func NewOrderHandler(
	orderRepo repositories.OrderRepositoryImpl,
	cartSvc *services.CartService,
	checkoutSvc *services.CheckoutService,
	render *renderer.Renderer,
) *OrderHandler {
	return &OrderHandler{
		orderRepo:   orderRepo,
		cartSvc:     cartSvc,
		checkoutSvc: checkoutSvc,
		render:      render,
	}
}

func (h *OrderHandler) Index(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserID(r.Context())
	orders, err := h.orderRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.Page(w, http.StatusOK, "Orders/Index", map[string]interface{}{
		"orders": orders,
	})
}

// Create serves the checkout form; without a cart there is nothing to
// check out, so it is a 404.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserID(r.Context())
	cart, err := h.cartSvc.GetCart(r.Context(), userID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if cart == nil {
		respondError(h.render, w, services.ErrNotFound)
		return
	}
	h.render.Page(w, http.StatusOK, "Orders/Create", map[string]interface{}{
		"cart": cart,
	})
}

func (h *OrderHandler) Store(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		fieldError(h.render, w, "form", "could not parse request body")
		return
	}

	in := services.PlaceOrderInput{
		Name:           r.FormValue("name"),
		Email:          r.FormValue("email"),
		Phone:          r.FormValue("phone"),
		Address:        r.FormValue("address"),
		City:           r.FormValue("city"),
		PaymentMethod:  r.FormValue("payment_method"),
		DeliveryMethod: r.FormValue("delivery_method"),
	}

	userID := middlewares.UserID(r.Context())
	if _, err := h.checkoutSvc.PlaceOrder(r.Context(), userID, in); err != nil {
		respondError(h.render, w, err)
		return
	}
	redirectTo(w, r, "/orders")
}

func (h *OrderHandler) Show(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if order.UserID != middlewares.UserID(r.Context()) {
		respondError(h.render, w, services.ErrForbidden)
		return
	}

	total := orderTotal(order)
	h.render.Page(w, http.StatusOK, "Orders/Show", map[string]interface{}{
		"order":         order,
		"total":         total,
		"display_total": format.Money(total),
	})
}

func orderTotal(order *models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, item := range order.OrderItems {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
