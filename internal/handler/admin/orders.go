package admin

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/vanir/internal/handler"
	"github.com/dukerupert/vanir/internal/service"
	"github.com/jackc/pgx/v5/pgtype"
)

// OrderHandler serves admin order management.
type OrderHandler struct {
	orders service.OrderService
	logger *slog.Logger
}

func NewOrderHandler(orders service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		logger: logger,
	}
}

// List handles GET /admin/orders with optional status and user filters.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := service.OrderFilter{
		Status: r.URL.Query().Get("status"),
		Limit:  handler.QueryInt32(r, "limit", 50),
		Offset: handler.QueryInt32(r, "offset", 0),
	}
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		var userID pgtype.UUID
		if err := userID.Scan(raw); err != nil {
			handler.RespondError(w, r, service.ErrUserNotFound)
			return
		}
		filter.UserID = userID
	}

	orders, err := h.orders.ListOrders(r.Context(), filter)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewOrderViews(orders))
}

// Get handles GET /admin/orders/{id}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	detail, err := h.orders.GetOrder(r.Context(), orderID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewOrderDetailView(detail))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /admin/orders/{id}/status. Only transitions
// allowed by the order lifecycle are accepted.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var req updateStatusRequest
	if err := handler.Decode(w, r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), orderID, req.Status)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	h.logger.Info("order status updated", "order_id", handler.UUIDString(orderID), "status", req.Status)
	handler.RespondJSON(w, http.StatusOK, handler.NewOrderView(*order))
}
