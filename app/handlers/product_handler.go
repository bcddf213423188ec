package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/storefront-go/storefront/app/middlewares"
	"github.com/storefront-go/storefront/app/models"
	"github.com/storefront-go/storefront/app/repositories"
	"github.com/storefront-go/storefront/app/services"
	"github.com/storefront-go/storefront/app/utils/renderer"
	"github.com/storefront-go/storefront/app/utils/storage"
)

const maxUploadBytes = 32 << 20

type ProductHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	catalogRepo  repositories.CatalogRepositoryImpl
	wishlistRepo repositories.WishlistRepositoryImpl
	productSvc   *services.ProductService
	store        storage.Storage
	render       *renderer.Renderer
}

func NewProductHandler(
	productRepo repositories.ProductRepositoryImpl,
	catalogRepo repositories.CatalogRepositoryImpl,
	wishlistRepo repositories.WishlistRepositoryImpl,
	productSvc *services.ProductService,
	store storage.Storage,
	render *renderer.Renderer,
) *ProductHandler {
	return &ProductHandler{
		productRepo:  productRepo,
		catalogRepo:  catalogRepo,
		wishlistRepo: wishlistRepo,
		productSvc:   productSvc,
		store:        store,
		render:       render,
	}
}

// Index lists the catalog with optional category/sort/search filters, plus
// the category list and the caller's wishlist for the page chrome.
func (h *ProductHandler) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repositories.CatalogFilter{
		CategoryName: query.Get("category"),
		Sort:         query.Get("sort"),
		Search:       query.Get("search"),
	}

	products, err := h.productRepo.Browse(r.Context(), filter)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	categories, err := h.catalogRepo.Categories(r.Context())
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	wishlists, err := h.userWishlists(r)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	h.render.Page(w, http.StatusOK, "Products/Index", map[string]interface{}{
		"products":   products,
		"categories": categories,
		"wishlists":  wishlists,
	})
}

func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Show(w http.ResponseWriter, r *http.Request) {
	product, err := h.productRepo.GetDetail(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	wishlists, err := h.userWishlists(r)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	h.render.Page(w, http.StatusOK, "Products/Show", map[string]interface{}{
		"product":   product,
		"wishlists": wishlists,
	})
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	props, err := h.formProps(r)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	h.render.Page(w, http.StatusOK, "Products/Create", props)
}

func (h *ProductHandler) Edit(w http.ResponseWriter, r *http.Request) {
	product, err := h.productRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	props, err := h.formProps(r)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	props["product"] = product
	h.render.Page(w, http.StatusOK, "Products/Edit", props)
}

func (h *ProductHandler) Store(w http.ResponseWriter, r *http.Request) {
	in, ok := h.parseInput(w, r)
	if !ok {
		return
	}
	if _, err := h.productSvc.Create(r.Context(), in); err != nil {
		respondError(h.render, w, err)
		return
	}
	redirectTo(w, r, "/products")
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := h.parseInput(w, r)
	if !ok {
		return
	}
	if _, err := h.productSvc.Update(r.Context(), mux.Vars(r)["id"], in); err != nil {
		respondError(h.render, w, err)
		return
	}
	redirectTo(w, r, "/products")
}

func (h *ProductHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := h.productSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(h.render, w, err)
		return
	}
	redirectTo(w, r, "/products")
}

func (h *ProductHandler) userWishlists(r *http.Request) ([]models.Wishlist, error) {
	userID := middlewares.UserID(r.Context())
	if userID == "" {
		return []models.Wishlist{}, nil
	}
	return h.wishlistRepo.GetByUserID(r.Context(), userID)
}

func (h *ProductHandler) formProps(r *http.Request) (map[string]interface{}, error) {
	categories, err := h.catalogRepo.Categories(r.Context())
	if err != nil {
		return nil, err
	}
	brands, err := h.catalogRepo.Brands(r.Context())
	if err != nil {
		return nil, err
	}
	genders, err := h.catalogRepo.Genders(r.Context())
	if err != nil {
		return nil, err
	}
	colors, err := h.catalogRepo.Colors(r.Context())
	if err != nil {
		return nil, err
	}
	sizes, err := h.catalogRepo.Sizes(r.Context())
	if err != nil {
		return nil, err
	}
	highlights, err := h.catalogRepo.Highlights(r.Context())
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"categories": categories,
		"brands":     brands,
		"genders":    genders,
		"colors":     colors,
		"sizes":      sizes,
		"highlights": highlights,
	}, nil
}

// parseInput reads the store/update form, pushing any uploads through the
// storage collaborator before the service sees them.
func (h *ProductHandler) parseInput(w http.ResponseWriter, r *http.Request) (services.ProductInput, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		if err := r.ParseForm(); err != nil {
			fieldError(h.render, w, "form", "could not parse request body")
			return services.ProductInput{}, false
		}
	}

	in := services.ProductInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		CategoryID:  r.FormValue("category_id"),
		BrandID:     r.FormValue("brand_id"),
		GenderID:    r.FormValue("gender_id"),
	}

	quantity, err := formInt(r, "quantity")
	if err != nil {
		fieldError(h.render, w, "quantity", "must be an integer")
		return in, false
	}
	in.Quantity = quantity

	price, err := decimal.NewFromString(r.FormValue("price"))
	if err != nil {
		fieldError(h.render, w, "price", "must be a number")
		return in, false
	}
	in.Price = price

	// Absent keys mean "leave the association set alone"; present keys
	// replace it entirely.
	if _, ok := r.Form["colors"]; ok {
		in.ColorIDs = r.Form["colors"]
	}
	if _, ok := r.Form["sizes"]; ok {
		in.SizeIDs = r.Form["sizes"]
	}
	if _, ok := r.Form["highlights"]; ok {
		in.HighlightIDs = r.Form["highlights"]
	}

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			file, err := header.Open()
			if err != nil {
				fieldError(h.render, w, "images", "could not read upload")
				return in, false
			}
			path, err := h.store.Store(file, header.Filename)
			file.Close()
			if err != nil {
				respondError(h.render, w, err)
				return in, false
			}
			in.ImagePaths = append(in.ImagePaths, path)
		}
	}

	return in, true
}
