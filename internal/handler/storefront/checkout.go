package storefront

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dukerupert/vanir/internal/handler"
	"github.com/dukerupert/vanir/internal/service"
	"github.com/dukerupert/vanir/internal/telemetry"
)

// CheckoutHandler converts the cart into an order.
type CheckoutHandler struct {
	checkout service.CheckoutService
	metrics  *telemetry.BusinessMetrics
	logger   *slog.Logger
}

func NewCheckoutHandler(checkout service.CheckoutService, metrics *telemetry.BusinessMetrics, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		metrics:  metrics,
		logger:   logger,
	}
}

type checkoutRequest struct {
	ShippingAddress string `json:"shipping_address"`
}

func checkoutFailureReason(err error) string {
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, service.ErrProductUnavailable):
		return "product_unavailable"
	case errors.Is(err, service.ErrCartTooLarge):
		return "cart_too_large"
	default:
		return "internal"
	}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var req checkoutRequest
	if err := handler.Decode(w, r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	h.metrics.CheckoutAttempts.Inc()

	detail, err := h.checkout.Checkout(r.Context(), identity.UserID, req.ShippingAddress)
	if err != nil {
		h.metrics.CheckoutFailed.WithLabelValues(checkoutFailureReason(err)).Inc()
		handler.RespondError(w, r, err)
		return
	}

	h.metrics.CheckoutCompleted.Inc()
	h.metrics.OrdersCreated.Inc()
	h.metrics.OrderValueCents.Observe(float64(detail.Order.TotalCents))
	h.metrics.RevenueCents.Add(float64(detail.Order.TotalCents))

	handler.RespondJSON(w, http.StatusCreated, handler.NewOrderDetailView(detail))
}
