package routes

import (
	"github.com/dukerupert/vanir/internal/middleware"
	"github.com/dukerupert/vanir/internal/router"
)

// RegisterAdminRoutes registers the admin management routes.
// All routes require the admin role; role changes and account
// deactivation additionally require super admin.
func RegisterAdminRoutes(r *router.Router, deps AdminDeps) {
	admin := r.Group(middleware.RequireAdmin)

	// Dashboard
	admin.Get("/admin/stats", deps.DashboardHandler.Stats)
	admin.Get("/admin/analytics", deps.DashboardHandler.Analytics)

	// Catalog management
	admin.Get("/admin/products", deps.ProductHandler.List)
	admin.Post("/admin/products", deps.ProductHandler.Create)
	admin.Get("/admin/products/{id}", deps.ProductHandler.Get)
	admin.Put("/admin/products/{id}", deps.ProductHandler.Update)
	admin.Delete("/admin/products/{id}", deps.ProductHandler.Deactivate)

	// Order management
	admin.Get("/admin/orders", deps.OrderHandler.List)
	admin.Get("/admin/orders/{id}", deps.OrderHandler.Get)
	admin.Put("/admin/orders/{id}/status", deps.OrderHandler.UpdateStatus)

	// Review moderation
	admin.Put("/admin/reviews/{id}/approval", deps.ReviewHandler.SetApproval)
	admin.Delete("/admin/reviews/{id}", deps.ReviewHandler.Delete)

	// Account management
	admin.Get("/admin/users", deps.UserHandler.List)
	admin.Get("/admin/users/{id}", deps.UserHandler.Get)

	super := r.Group(middleware.RequireSuperAdmin)
	super.Put("/admin/users/{id}/role", deps.UserHandler.SetRole)
	super.Delete("/admin/users/{id}", deps.UserHandler.Deactivate)
}
