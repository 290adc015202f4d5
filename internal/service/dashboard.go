package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dukerupert/vanir/internal/domain"
	"github.com/dukerupert/vanir/internal/repository"
	"github.com/jackc/pgx/v5/pgtype"
)

// DashboardService aggregates store-wide numbers for the admin panel
type DashboardService interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
	GetAnalytics(ctx context.Context, days int) (*Analytics, error)
}

// DashboardStats holds the all-time counters shown on the admin landing page
type DashboardStats struct {
	TotalUsers        int64
	TotalProducts     int64
	TotalOrders       int64
	PendingOrders     int64
	LowStockProducts  int64
	TotalRevenueCents int64
}

// Analytics holds windowed sales figures
type Analytics struct {
	Days              int
	Orders            int64
	NewUsers          int64
	RevenueCents      int64
	AverageOrderCents int64
	TopProducts       []TopProduct
}

// TopProduct is a best seller within the analytics window
type TopProduct struct {
	ProductID    pgtype.UUID
	ProductName  string
	UnitsSold    int64
	RevenueCents int64
}

type dashboardService struct {
	repo repository.Querier
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(repo repository.Querier) DashboardService {
	return &dashboardService{repo: repo}
}

// GetStats collects the all-time store counters.
func (s *dashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	products, err := s.repo.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	orders, err := s.repo.CountOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	pending, err := s.repo.CountOrdersByStatus(ctx, string(domain.OrderStatusPending))
	if err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}
	lowStock, err := s.repo.CountLowStockProducts(ctx, DefaultLowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to count low stock products: %w", err)
	}
	revenue, err := s.repo.SumOrderRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return &DashboardStats{
		TotalUsers:        users,
		TotalProducts:     products,
		TotalOrders:       orders,
		PendingOrders:     pending,
		LowStockProducts:  lowStock,
		TotalRevenueCents: revenue,
	}, nil
}

// GetAnalytics collects sales figures over the trailing window. Cancelled
// orders count toward order volume but not revenue.
func (s *dashboardService) GetAnalytics(ctx context.Context, days int) (*Analytics, error) {
	if days <= 0 {
		days = 30
	}
	since := pgtype.Timestamptz{
		Time:  time.Now().AddDate(0, 0, -days),
		Valid: true,
	}

	orders, err := s.repo.CountOrdersSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	newUsers, err := s.repo.CountUsersSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count new users: %w", err)
	}
	revenue, err := s.repo.SumOrderRevenueSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	top, err := s.repo.TopProductsSince(ctx, repository.TopProductsSinceParams{
		Since: since,
		Limit: 5,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to rank products: %w", err)
	}

	analytics := &Analytics{
		Days:         days,
		Orders:       orders,
		NewUsers:     newUsers,
		RevenueCents: revenue,
		TopProducts:  make([]TopProduct, 0, len(top)),
	}
	if orders > 0 {
		analytics.AverageOrderCents = revenue / orders
	}
	for _, row := range top {
		analytics.TopProducts = append(analytics.TopProducts, TopProduct{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			UnitsSold:    row.UnitsSold,
			RevenueCents: row.RevenueCents,
		})
	}
	return analytics, nil
}
