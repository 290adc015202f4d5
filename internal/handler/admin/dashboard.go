package admin

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/vanir/internal/handler"
	"github.com/dukerupert/vanir/internal/service"
)

// DashboardHandler serves the admin landing stats and sales analytics.
type DashboardHandler struct {
	dashboard service.DashboardService
	logger    *slog.Logger
}

func NewDashboardHandler(dashboard service.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		logger:    logger,
	}
}

type statsResponse struct {
	TotalUsers        int64 `json:"total_users"`
	TotalProducts     int64 `json:"total_products"`
	TotalOrders       int64 `json:"total_orders"`
	PendingOrders     int64 `json:"pending_orders"`
	LowStockProducts  int64 `json:"low_stock_products"`
	TotalRevenueCents int64 `json:"total_revenue_cents"`
}

// Stats handles GET /admin/stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.GetStats(r.Context())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, statsResponse{
		TotalUsers:        stats.TotalUsers,
		TotalProducts:     stats.TotalProducts,
		TotalOrders:       stats.TotalOrders,
		PendingOrders:     stats.PendingOrders,
		LowStockProducts:  stats.LowStockProducts,
		TotalRevenueCents: stats.TotalRevenueCents,
	})
}

type topProductView struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	UnitsSold    int64  `json:"units_sold"`
	RevenueCents int64  `json:"revenue_cents"`
}

type analyticsResponse struct {
	Days              int              `json:"days"`
	Orders            int64            `json:"orders"`
	NewUsers          int64            `json:"new_users"`
	RevenueCents      int64            `json:"revenue_cents"`
	AverageOrderCents int64            `json:"average_order_cents"`
	TopProducts       []topProductView `json:"top_products"`
}

// Analytics handles GET /admin/analytics?days=N
func (h *DashboardHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	days := int(handler.QueryInt32(r, "days", 30))

	analytics, err := h.dashboard.GetAnalytics(r.Context(), days)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	top := make([]topProductView, 0, len(analytics.TopProducts))
	for _, p := range analytics.TopProducts {
		top = append(top, topProductView{
			ProductID:    handler.UUIDString(p.ProductID),
			ProductName:  p.ProductName,
			UnitsSold:    p.UnitsSold,
			RevenueCents: p.RevenueCents,
		})
	}

	handler.RespondJSON(w, http.StatusOK, analyticsResponse{
		Days:              analytics.Days,
		Orders:            analytics.Orders,
		NewUsers:          analytics.NewUsers,
		RevenueCents:      analytics.RevenueCents,
		AverageOrderCents: analytics.AverageOrderCents,
		TopProducts:       top,
	})
}
