package routes

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/storefront-go/storefront/app/configs"
	"github.com/storefront-go/storefront/app/handlers"
	"github.com/storefront-go/storefront/app/middlewares"
	"github.com/storefront-go/storefront/app/repositories"
	"github.com/storefront-go/storefront/app/services"
	"github.com/storefront-go/storefront/app/utils/renderer"
	"github.com/storefront-go/storefront/app/utils/sessions"
	"github.com/storefront-go/storefront/app/utils/storage"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers and lays out the
// resource routes. Mutating routes sit behind the auth requirement; the
// catalog stays public.
func NewRouter(db *gorm.DB, env configs.ENV) (http.Handler, error) {
	keys, err := configs.LoadSessionKeys(env)
	if err != nil {
		return nil, err
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	rnd := renderer.New()
	store := storage.NewPublicStorage(env.UploadDir, env.PublicPath)

	productRepo := repositories.NewProductRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	imageRepo := repositories.NewImageRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)

	cartSvc := services.NewCartService(cartRepo, cartItemRepo, productRepo, imageRepo)
	checkoutSvc := services.NewCheckoutService(db, cartRepo)
	productSvc := services.NewProductService(db, productRepo, imageRepo, store)
	reviewSvc := services.NewReviewService(reviewRepo, productRepo)
	wishlistSvc := services.NewWishlistService(wishlistRepo, productRepo)

	productHandler := handlers.NewProductHandler(productRepo, catalogRepo, wishlistRepo, productSvc, store, rnd)
	cartHandler := handlers.NewCartHandler(cartSvc, rnd)
	orderHandler := handlers.NewOrderHandler(orderRepo, cartSvc, checkoutSvc, rnd)
	reviewHandler := handlers.NewReviewHandler(reviewRepo, productRepo, reviewSvc, rnd)
	wishlistHandler := handlers.NewWishlistHandler(wishlistRepo, wishlistSvc, rnd)

	router := mux.NewRouter()
	router.Use(middlewares.MethodOverride)
	router.Use(middlewares.CurrentUser(sessionStore))

	authed := func(h http.HandlerFunc) http.Handler {
		return middlewares.RequireUser(h)
	}

	router.HandleFunc("/", productHandler.Index).Methods(http.MethodGet)

	router.HandleFunc("/products", productHandler.Index).Methods(http.MethodGet).Name("products.index")
	router.HandleFunc("/products/search", productHandler.Search).Methods(http.MethodGet)
	router.Handle("/products/create", authed(productHandler.Create)).Methods(http.MethodGet)
	router.Handle("/products", authed(productHandler.Store)).Methods(http.MethodPost)
	router.HandleFunc("/products/{id}", productHandler.Show).Methods(http.MethodGet)
	router.Handle("/products/{id}/edit", authed(productHandler.Edit)).Methods(http.MethodGet)
	router.Handle("/products/{id}", authed(productHandler.Update)).Methods(http.MethodPut)
	router.Handle("/products/{id}", authed(productHandler.Destroy)).Methods(http.MethodDelete)

	router.Handle("/carts", authed(cartHandler.Index)).Methods(http.MethodGet).Name("carts.index")
	router.Handle("/carts", authed(cartHandler.Store)).Methods(http.MethodPost)
	router.Handle("/carts/items/{id}", authed(cartHandler.Update)).Methods(http.MethodPut)
	router.Handle("/carts/items/{id}", authed(cartHandler.Destroy)).Methods(http.MethodDelete)

	router.Handle("/orders", authed(orderHandler.Index)).Methods(http.MethodGet).Name("orders.index")
	router.Handle("/orders/create", authed(orderHandler.Create)).Methods(http.MethodGet)
	router.Handle("/orders", authed(orderHandler.Store)).Methods(http.MethodPost)
	router.Handle("/orders/{id}", authed(orderHandler.Show)).Methods(http.MethodGet)

	router.HandleFunc("/reviews", reviewHandler.Index).Methods(http.MethodGet).Name("reviews.index")
	router.Handle("/reviews/create", authed(reviewHandler.Create)).Methods(http.MethodGet)
	router.Handle("/reviews", authed(reviewHandler.Store)).Methods(http.MethodPost)
	router.HandleFunc("/reviews/{id}", reviewHandler.Show).Methods(http.MethodGet)
	router.Handle("/reviews/{id}/edit", authed(reviewHandler.Edit)).Methods(http.MethodGet)
	router.Handle("/reviews/{id}", authed(reviewHandler.Update)).Methods(http.MethodPut)
	router.Handle("/reviews/{id}", authed(reviewHandler.Destroy)).Methods(http.MethodDelete)

	router.Handle("/wishlists", authed(wishlistHandler.Index)).Methods(http.MethodGet).Name("wishlists.index")
	router.Handle("/wishlists", authed(wishlistHandler.Store)).Methods(http.MethodPost)
	router.Handle("/wishlists/{productID}", authed(wishlistHandler.Destroy)).Methods(http.MethodDelete)

	csrfProtect := csrf.Protect(
		[]byte(env.CSRFKey),
		csrf.Path("/"),
		csrf.Secure(env.AppEnv == "production"),
	)
	return csrfProtect(router), nil
}
