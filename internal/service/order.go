package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dukerupert/vanir/internal/domain"
	"github.com/dukerupert/vanir/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// OrderService provides business logic for order management
type OrderService interface {
	GetOrder(ctx context.Context, orderID pgtype.UUID) (*OrderDetail, error)
	GetUserOrder(ctx context.Context, userID, orderID pgtype.UUID) (*OrderDetail, error)
	ListUserOrders(ctx context.Context, userID pgtype.UUID) ([]Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID pgtype.UUID, status string) (*Order, error)
	CancelOrder(ctx context.Context, userID, orderID pgtype.UUID) (*Order, error)
}

// Order represents an order view model
type Order struct {
	ID              pgtype.UUID
	UserID          pgtype.UUID
	TotalCents      int32
	Status          domain.OrderStatus
	ShippingAddress string
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

// OrderItem represents a single order line with its price snapshot
type OrderItem struct {
	ID             pgtype.UUID
	ProductID      pgtype.UUID
	ProductName    string
	Quantity       int32
	UnitPriceCents int32
	TotalCents     int32
}

// OrderDetail combines an order with its items
type OrderDetail struct {
	Order Order
	Items []OrderItem
}

// OrderFilter narrows admin order listings
type OrderFilter struct {
	Status string
	UserID pgtype.UUID
	Limit  int32
	Offset int32
}

func newOrder(o repository.Order) Order {
	return Order{
		ID:              o.ID,
		UserID:          o.UserID,
		TotalCents:      o.TotalCents,
		Status:          domain.OrderStatus(o.Status),
		ShippingAddress: o.ShippingAddress.String,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func newOrderItem(i repository.OrderItem) OrderItem {
	return OrderItem{
		ID:             i.ID,
		ProductID:      i.ProductID,
		ProductName:    i.ProductName,
		Quantity:       i.Quantity,
		UnitPriceCents: i.UnitPriceCents,
		TotalCents:     i.TotalCents,
	}
}

type orderService struct {
	repo repository.Querier
}

// NewOrderService creates a new OrderService instance
func NewOrderService(repo repository.Querier) OrderService {
	return &orderService{repo: repo}
}

// GetOrder loads an order with its items, without ownership scoping.
func (s *orderService) GetOrder(ctx context.Context, orderID pgtype.UUID) (*OrderDetail, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return s.buildDetail(ctx, order)
}

// GetUserOrder loads an order with its items. Orders belonging to other
// users are reported as not found rather than forbidden.
func (s *orderService) GetUserOrder(ctx context.Context, userID, orderID pgtype.UUID) (*OrderDetail, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return s.buildDetail(ctx, order)
}

func (s *orderService) buildDetail(ctx context.Context, order repository.Order) (*OrderDetail, error) {
	rows, err := s.repo.GetOrderItems(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	items := make([]OrderItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, newOrderItem(row))
	}
	return &OrderDetail{
		Order: newOrder(order),
		Items: items,
	}, nil
}

// ListUserOrders returns the user's orders, newest first.
func (s *orderService) ListUserOrders(ctx context.Context, userID pgtype.UUID) ([]Order, error) {
	rows, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	orders := make([]Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, newOrder(row))
	}
	return orders, nil
}

// ListOrders returns orders across all users with optional filters.
func (s *orderService) ListOrders(ctx context.Context, filter OrderFilter) ([]Order, error) {
	params := repository.ListOrdersParams{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	if params.Limit <= 0 || params.Limit > 100 {
		params.Limit = 50
	}
	if filter.Status != "" {
		if !domain.ValidOrderStatus(filter.Status) {
			return nil, ErrInvalidStatus
		}
		params.Status = pgtype.Text{String: filter.Status, Valid: true}
	}
	if filter.UserID.Valid {
		params.UserID = filter.UserID
	}

	rows, err := s.repo.ListOrders(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	orders := make([]Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, newOrder(row))
	}
	return orders, nil
}

// UpdateStatus moves an order along the fulfillment lifecycle. Only the
// transitions in the status graph are allowed; anything else is a conflict.
func (s *orderService) UpdateStatus(ctx context.Context, orderID pgtype.UUID, status string) (*Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	from := domain.OrderStatus(order.Status)
	to := domain.OrderStatus(status)
	if !domain.CanTransition(from, to) {
		return nil, ErrInvalidTransition
	}

	updated, err := s.repo.UpdateOrderStatus(ctx, repository.UpdateOrderStatusParams{
		ID:     orderID,
		Status: status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	result := newOrder(updated)
	return &result, nil
}

// CancelOrder lets a user cancel their own order while it is still pending
// or processing.
func (s *orderService) CancelOrder(ctx context.Context, userID, orderID pgtype.UUID) (*Order, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}

	if !domain.CanTransition(domain.OrderStatus(order.Status), domain.OrderStatusCancelled) {
		return nil, ErrInvalidTransition
	}

	updated, err := s.repo.UpdateOrderStatus(ctx, repository.UpdateOrderStatusParams{
		ID:     orderID,
		Status: string(domain.OrderStatusCancelled),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	result := newOrder(updated)
	return &result, nil
}
