package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/storefront-go/storefront/app/middlewares"
	"github.com/storefront-go/storefront/app/models"
	"github.com/storefront-go/storefront/app/services"
	"github.com/storefront-go/storefront/app/utils/format"
	"github.com/storefront-go/storefront/app/utils/renderer"
)

type CartHandler struct {
	cartSvc *services.CartService
	render  *renderer.Renderer
}

func NewCartHandler(cartSvc *services.CartService, render *renderer.Renderer) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, render: render}
}

func (h *CartHandler) Index(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserID(r.Context())

	cart, err := h.cartSvc.GetCart(r.Context(), userID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	total := cartTotal(cart)
	h.render.Page(w, http.StatusOK, "Cart/Index", map[string]interface{}{
		"cart":          cart,
		"total":         total,
		"display_total": format.Money(total),
	})
}

func (h *CartHandler) Store(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		fieldError(h.render, w, "form", "could not parse request body")
		return
	}

	quantity, err := formInt(r, "quantity")
	if err != nil {
		fieldError(h.render, w, "quantity", "must be an integer")
		return
	}

	in := services.AddItemInput{
		ProductID: r.FormValue("product_id"),
		Quantity:  quantity,
		ColorID:   optionalFormValue(r, "color_id"),
		SizeID:    optionalFormValue(r, "size_id"),
		ImageID:   optionalFormValue(r, "image_id"),
	}

	userID := middlewares.UserID(r.Context())
	if _, err := h.cartSvc.AddItem(r.Context(), userID, in); err != nil {
		respondError(h.render, w, err)
		return
	}
	redirectTo(w, r, "/carts")
}

func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		fieldError(h.render, w, "form", "could not parse request body")
		return
	}
	quantity, err := formInt(r, "quantity")
	if err != nil {
		fieldError(h.render, w, "quantity", "must be an integer")
		return
	}

	userID := middlewares.UserID(r.Context())
	if err := h.cartSvc.UpdateItemQuantity(r.Context(), userID, mux.Vars(r)["id"], quantity); err != nil {
		respondError(h.render, w, err)
		return
	}
	redirectTo(w, r, "/carts")
}

func (h *CartHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserID(r.Context())
	if err := h.cartSvc.RemoveItem(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		respondError(h.render, w, err)
		return
	}
	redirectTo(w, r, "/carts")
}

func cartTotal(cart *models.Cart) decimal.Decimal {
	total := decimal.Zero
	if cart == nil {
		return total
	}
	for _, item := range cart.CartItems {
		if item.Product == nil {
			continue
		}
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
