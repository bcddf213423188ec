package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/storefront-go/storefront/app/middlewares"
	"github.com/storefront-go/storefront/app/repositories"
	"github.com/storefront-go/storefront/app/services"
	"github.com/storefront-go/storefront/app/utils/renderer"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	reviewRepo  repositories.ReviewRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
	reviewSvc   *services.ReviewService
	render      *renderer.Renderer
}

func NewReviewHandler(
	reviewRepo repositories.ReviewRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	reviewSvc *services.ReviewService,
	render *renderer.Renderer,
) *ReviewHandler {
	return &ReviewHandler{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		reviewSvc:   reviewSvc,
		render:      render,
	}
}

// Index lists reviews, narrowed to one product when product_id is given.
func (h *ReviewHandler) Index(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("product_id")

	reviews, err := h.reviewRepo.List(r.Context(), productID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	props := map[string]interface{}{"reviews": reviews}
	if productID != "" {
		product, err := h.productRepo.GetByID(r.Context(), productID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(h.render, w, err)
			return
		}
		props["product"] = product
	}

	h.render.Page(w, http.StatusOK, "Reviews/Index", props)
}

func (h *ReviewHandler) Show(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviewRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.Page(w, http.StatusOK, "Reviews/Show", map[string]interface{}{
		"review": review,
	})
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.render.Page(w, http.StatusOK, "Reviews/Create", map[string]interface{}{
		"product_id": r.URL.Query().Get("product_id"),
	})
}

func (h *ReviewHandler) Edit(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviewRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.Page(w, http.StatusOK, "Reviews/Edit", map[string]interface{}{
		"review": review,
	})
}

func (h *ReviewHandler) Store(w http.ResponseWriter, r *http.Request) {
	in, ok := h.parseInput(w, r)
	if !ok {
		return
	}
	userID := middlewares.UserID(r.Context())
	if _, err := h.reviewSvc.Create(r.Context(), userID, in); err != nil {
		respondError(h.render, w, err)
		return
	}
	redirectBack(w, r)
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := h.parseInput(w, r)
	if !ok {
		return
	}
	userID := middlewares.UserID(r.Context())
	if _, err := h.reviewSvc.Update(r.Context(), userID, mux.Vars(r)["id"], in); err != nil {
		respondError(h.render, w, err)
		return
	}
	redirectTo(w, r, "/reviews")
}

func (h *ReviewHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserID(r.Context())
	if err := h.reviewSvc.Delete(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		respondError(h.render, w, err)
		return
	}
	redirectBack(w, r)
}

func (h *ReviewHandler) parseInput(w http.ResponseWriter, r *http.Request) (services.ReviewInput, bool) {
	if err := r.ParseForm(); err != nil {
		fieldError(h.render, w, "form", "could not parse request body")
		return services.ReviewInput{}, false
	}
	rating, err := formInt(r, "rating")
	if err != nil {
		fieldError(h.render, w, "rating", "must be an integer")
		return services.ReviewInput{}, false
	}
	return services.ReviewInput{
		ProductID: r.FormValue("product_id"),
		Rating:    rating,
		Comment:   r.FormValue("comment"),
	}, true
}
