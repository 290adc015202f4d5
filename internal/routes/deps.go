package routes

import (
	"github.com/dukerupert/vanir/internal/handler/admin"
	"github.com/dukerupert/vanir/internal/handler/storefront"
)

// StorefrontDeps contains dependencies for storefront routes
type StorefrontDeps struct {
	// Auth (signup, login)
	AuthHandler *storefront.AuthHandler

	// Products and reviews
	ProductHandler *storefront.ProductHandler

	// Cart
	CartHandler *storefront.CartHandler

	// Checkout
	CheckoutHandler *storefront.CheckoutHandler

	// Orders
	OrderHandler *storefront.OrderHandler

	// Address book
	AddressHandler *storefront.AddressHandler

	// Account profile
	ProfileHandler *storefront.ProfileHandler
}

// AdminDeps contains dependencies for admin routes
type AdminDeps struct {
	DashboardHandler *admin.DashboardHandler
	UserHandler      *admin.UserHandler
	ProductHandler   *admin.ProductHandler
	OrderHandler     *admin.OrderHandler
	ReviewHandler    *admin.ReviewHandler
}
