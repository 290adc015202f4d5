package admin

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/vanir/internal/handler"
	"github.com/dukerupert/vanir/internal/service"
)

// ProductHandler serves admin catalog management.
type ProductHandler struct {
	products service.ProductService
	logger   *slog.Logger
}

func NewProductHandler(products service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int32  `json:"price_cents"`
	Quantity    int32  `json:"quantity"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	SKU         string `json:"sku"`
	IsActive    *bool  `json:"is_active"`
}

func (req productRequest) params() service.ProductParams {
	return service.ProductParams{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		SKU:         req.SKU,
		IsActive:    req.IsActive,
	}
}

// List handles GET /admin/products. Unlike the storefront listing this
// includes inactive products and supports the low stock filter.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := service.ProductFilter{
		Search:          r.URL.Query().Get("q"),
		Category:        r.URL.Query().Get("category"),
		LowStock:        r.URL.Query().Get("low_stock") == "true",
		IncludeInactive: true,
		Limit:           handler.QueryInt32(r, "limit", 50),
		Offset:          handler.QueryInt32(r, "offset", 0),
	}

	products, err := h.products.ListProducts(r.Context(), filter)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewProductViews(products))
}

// Get handles GET /admin/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	product, err := h.products.GetProduct(r.Context(), productID, true)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewProductView(*product))
}

// Create handles POST /admin/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := handler.Decode(w, r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	product, err := h.products.CreateProduct(r.Context(), req.params())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	h.logger.Info("product created", "product_id", handler.UUIDString(product.ID), "name", product.Name)
	handler.RespondJSON(w, http.StatusCreated, handler.NewProductView(*product))
}

// Update handles PUT /admin/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var req productRequest
	if err := handler.Decode(w, r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	product, err := h.products.UpdateProduct(r.Context(), productID, req.params())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewProductView(*product))
}

// Deactivate handles DELETE /admin/products/{id}. Products are soft
// deleted so existing order history keeps its references.
func (h *ProductHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	productID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if err := h.products.DeactivateProduct(r.Context(), productID); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	h.logger.Info("product deactivated", "product_id", handler.UUIDString(productID))
	w.WriteHeader(http.StatusNoContent)
}
