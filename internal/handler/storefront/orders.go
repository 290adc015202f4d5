package storefront

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/vanir/internal/handler"
	"github.com/dukerupert/vanir/internal/service"
	"github.com/dukerupert/vanir/internal/telemetry"
)

// OrderHandler serves the authenticated user's order history.
type OrderHandler struct {
	orders  service.OrderService
	metrics *telemetry.BusinessMetrics
	logger  *slog.Logger
}

func NewOrderHandler(orders service.OrderService, metrics *telemetry.BusinessMetrics, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orders:  orders,
		metrics: metrics,
		logger:  logger,
	}
}

// List handles GET /orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	orders, err := h.orders.ListUserOrders(r.Context(), identity.UserID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewOrderViews(orders))
}

// Get handles GET /orders/{id}. Orders belonging to other users read as
// not found.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	orderID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	detail, err := h.orders.GetUserOrder(r.Context(), identity.UserID, orderID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewOrderDetailView(detail))
}

// Cancel handles POST /orders/{id}/cancel
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	orderID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	order, err := h.orders.CancelOrder(r.Context(), identity.UserID, orderID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	h.metrics.OrdersCancelled.Inc()
	h.logger.Info("order cancelled", "order_id", handler.UUIDString(order.ID), "user_id", handler.UUIDString(identity.UserID))
	handler.RespondJSON(w, http.StatusOK, handler.NewOrderView(*order))
}
