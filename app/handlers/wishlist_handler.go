package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/storefront-go/storefront/app/middlewares"
	"github.com/storefront-go/storefront/app/repositories"
	"github.com/storefront-go/storefront/app/services"
	"github.com/storefront-go/storefront/app/utils/renderer"
)

type WishlistHandler struct {
	wishlistRepo repositories.WishlistRepositoryImpl
	wishlistSvc  *services.WishlistService
	render       *renderer.Renderer
}

func NewWishlistHandler(
	wishlistRepo repositories.WishlistRepositoryImpl,
	wishlistSvc *services.WishlistService,
	render *renderer.Renderer,
) *WishlistHandler {
	return &WishlistHandler{
		wishlistRepo: wishlistRepo,
		wishlistSvc:  wishlistSvc,
		render:       render,
	}
}

func (h *WishlistHandler) Index(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserID(r.Context())
	wishlists, err := h.wishlistRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.Page(w, http.StatusOK, "Wishlist/Index", map[string]interface{}{
		"wishlists": wishlists,
	})
}

func (h *WishlistHandler) Store(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		fieldError(h.render, w, "form", "could not parse request body")
		return
	}
	userID := middlewares.UserID(r.Context())
	if err := h.wishlistSvc.Add(r.Context(), userID, r.FormValue("product_id")); err != nil {
		respondError(h.render, w, err)
		return
	}
	redirectBack(w, r)
}

// Destroy removes by product id, matching the add operation's scope.
func (h *WishlistHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserID(r.Context())
	if err := h.wishlistSvc.Remove(r.Context(), userID, mux.Vars(r)["productID"]); err != nil {
		respondError(h.render, w, err)
		return
	}
	redirectBack(w, r)
}
