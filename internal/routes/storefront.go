package routes

import (
	"github.com/dukerupert/vanir/internal/middleware"
	"github.com/dukerupert/vanir/internal/router"
)

// RegisterStorefrontRoutes registers the public catalog and the
// authenticated customer routes.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Public
	r.Post("/auth/register", deps.AuthHandler.Register)
	r.Post("/auth/login", deps.AuthHandler.Login)

	r.Get("/products", deps.ProductHandler.List)
	r.Get("/products/{id}", deps.ProductHandler.Get)
	r.Get("/products/{id}/reviews", deps.ProductHandler.ListReviews)
	r.Get("/products/{id}/rating", deps.ProductHandler.GetRating)

	// Authenticated customer routes
	auth := r.Group(middleware.RequireAuth)

	auth.Post("/products/{id}/reviews", deps.ProductHandler.CreateReview)

	auth.Get("/cart", deps.CartHandler.Get)
	auth.Post("/cart/items", deps.CartHandler.AddItem)
	auth.Put("/cart/items/{id}", deps.CartHandler.UpdateItem)
	auth.Delete("/cart/items/{id}", deps.CartHandler.RemoveItem)
	auth.Delete("/cart", deps.CartHandler.Clear)
	auth.Post("/cart/deduplicate", deps.CartHandler.Deduplicate)

	auth.Post("/checkout", deps.CheckoutHandler.Checkout)

	auth.Get("/orders", deps.OrderHandler.List)
	auth.Get("/orders/{id}", deps.OrderHandler.Get)
	auth.Post("/orders/{id}/cancel", deps.OrderHandler.Cancel)

	auth.Get("/addresses", deps.AddressHandler.List)
	auth.Post("/addresses", deps.AddressHandler.Create)
	auth.Get("/addresses/{id}", deps.AddressHandler.Get)
	auth.Put("/addresses/{id}", deps.AddressHandler.Update)
	auth.Delete("/addresses/{id}", deps.AddressHandler.Delete)
	auth.Post("/addresses/{id}/default", deps.AddressHandler.SetDefault)

	auth.Get("/profile", deps.ProfileHandler.Get)
	auth.Put("/profile", deps.ProfileHandler.Update)
	auth.Put("/profile/password", deps.ProfileHandler.ChangePassword)
	auth.Get("/profile/reviews", deps.ProfileHandler.ListReviews)
}
