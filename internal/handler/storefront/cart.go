package storefront

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/vanir/internal/handler"
	"github.com/dukerupert/vanir/internal/service"
	"github.com/dukerupert/vanir/internal/telemetry"
	"github.com/jackc/pgx/v5/pgtype"
)

// CartHandler serves the authenticated user's shopping cart.
type CartHandler struct {
	carts   service.CartService
	metrics *telemetry.BusinessMetrics
	logger  *slog.Logger
}

func NewCartHandler(carts service.CartService, metrics *telemetry.BusinessMetrics, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		carts:   carts,
		metrics: metrics,
		logger:  logger,
	}
}

// Get handles GET /cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	summary, err := h.carts.GetCartSummary(r.Context(), identity.UserID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewCartView(summary))
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

// AddItem handles POST /cart/items. Adding a product already in the cart
// merges quantities into the existing line.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var req addItemRequest
	if err := handler.Decode(w, r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var productID pgtype.UUID
	if err := productID.Scan(req.ProductID); err != nil {
		handler.RespondError(w, r, service.ErrProductNotFound)
		return
	}

	// Omitted quantity means one
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	summary, err := h.carts.AddItem(r.Context(), identity.UserID, productID, quantity)
	if err != nil {
		h.metrics.CartItemsAdded.WithLabelValues("error").Inc()
		handler.RespondError(w, r, err)
		return
	}

	h.metrics.CartItemsAdded.WithLabelValues("ok").Inc()
	handler.RespondJSON(w, http.StatusOK, handler.NewCartView(summary))
}

type updateItemRequest struct {
	Quantity int32 `json:"quantity"`
}

// UpdateItem handles PUT /cart/items/{id}. A quantity of zero or less
// removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	itemID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var req updateItemRequest
	if err := handler.Decode(w, r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	summary, err := h.carts.UpdateItemQuantity(r.Context(), identity.UserID, itemID, req.Quantity)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewCartView(summary))
}

// RemoveItem handles DELETE /cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	itemID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	summary, err := h.carts.RemoveItem(r.Context(), identity.UserID, itemID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	h.metrics.CartItemsRemoved.Inc()
	handler.RespondJSON(w, http.StatusOK, handler.NewCartView(summary))
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if err := h.carts.ClearCart(r.Context(), identity.UserID); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	h.metrics.CartsCleared.Inc()
	w.WriteHeader(http.StatusNoContent)
}

type deduplicateResponse struct {
	Removed int              `json:"removed"`
	Cart    handler.CartView `json:"cart"`
}

// Deduplicate handles POST /cart/deduplicate. Cleans up duplicate lines
// left behind by clients created before quantities merged on add.
func (h *CartHandler) Deduplicate(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	removed, err := h.carts.Deduplicate(r.Context(), identity.UserID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	summary, err := h.carts.GetCartSummary(r.Context(), identity.UserID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if removed > 0 {
		h.logger.Info("cart deduplicated", "user_id", handler.UUIDString(identity.UserID), "removed", removed)
	}
	handler.RespondJSON(w, http.StatusOK, deduplicateResponse{
		Removed: removed,
		Cart:    handler.NewCartView(summary),
	})
}
