package service

import (
	"context"
	"testing"

	"github.com/dukerupert/vanir/internal/domain"
	"github.com/dukerupert/vanir/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOrderID = mustUUID("eeeeeeee-eeee-4eee-8eee-eeeeeeeeeeee")

func orderWithStatus(status domain.OrderStatus) repository.Order {
	return repository.Order{
		ID:         testOrderID,
		UserID:     testUserID,
		TotalCents: 2500,
		Status:     string(status),
	}
}

func TestUpdateStatus_AllowedTransitions(t *testing.T) {
	cases := []struct {
		from domain.OrderStatus
		to   domain.OrderStatus
	}{
		{domain.OrderStatusPending, domain.OrderStatusProcessing},
		{domain.OrderStatusPending, domain.OrderStatusCancelled},
		{domain.OrderStatusProcessing, domain.OrderStatusShipped},
		{domain.OrderStatusProcessing, domain.OrderStatusCancelled},
		{domain.OrderStatusShipped, domain.OrderStatusDelivered},
	}

	for _, tc := range cases {
		repo := &mockQuerier{
			GetOrderByIDFunc: func(ctx context.Context, id pgtype.UUID) (repository.Order, error) {
				return orderWithStatus(tc.from), nil
			},
			UpdateOrderStatusFunc: func(ctx context.Context, arg repository.UpdateOrderStatusParams) (repository.Order, error) {
				return orderWithStatus(domain.OrderStatus(arg.Status)), nil
			},
		}
		svc := NewOrderService(repo)

		order, err := svc.UpdateStatus(context.Background(), testOrderID, string(tc.to))
		require.NoError(t, err, "%s -> %s should be allowed", tc.from, tc.to)
		assert.Equal(t, tc.to, order.Status)
	}
}

func TestUpdateStatus_RejectedTransitions(t *testing.T) {
	cases := []struct {
		from domain.OrderStatus
		to   domain.OrderStatus
	}{
		{domain.OrderStatusPending, domain.OrderStatusShipped},
		{domain.OrderStatusPending, domain.OrderStatusDelivered},
		{domain.OrderStatusShipped, domain.OrderStatusCancelled},
		{domain.OrderStatusDelivered, domain.OrderStatusPending},
		{domain.OrderStatusCancelled, domain.OrderStatusProcessing},
		{domain.OrderStatusDelivered, domain.OrderStatusDelivered},
	}

	for _, tc := range cases {
		repo := &mockQuerier{
			GetOrderByIDFunc: func(ctx context.Context, id pgtype.UUID) (repository.Order, error) {
				return orderWithStatus(tc.from), nil
			},
		}
		svc := NewOrderService(repo)

		_, err := svc.UpdateStatus(context.Background(), testOrderID, string(tc.to))
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc := NewOrderService(&mockQuerier{})

	_, err := svc.UpdateStatus(context.Background(), testOrderID, "misplaced")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetUserOrder_HidesOtherUsersOrders(t *testing.T) {
	otherUser := mustUUID("99999999-9999-4999-8999-999999999999")
	repo := &mockQuerier{
		GetOrderByIDFunc: func(ctx context.Context, id pgtype.UUID) (repository.Order, error) {
			order := orderWithStatus(domain.OrderStatusPending)
			order.UserID = otherUser
			return order, nil
		},
	}
	svc := NewOrderService(repo)

	_, err := svc.GetUserOrder(context.Background(), testUserID, testOrderID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetUserOrder_ReturnsItems(t *testing.T) {
	repo := &mockQuerier{
		GetOrderByIDFunc: func(ctx context.Context, id pgtype.UUID) (repository.Order, error) {
			return orderWithStatus(domain.OrderStatusPending), nil
		},
		GetOrderItemsFunc: func(ctx context.Context, orderID pgtype.UUID) ([]repository.OrderItem, error) {
			return []repository.OrderItem{
				{OrderID: testOrderID, ProductName: "Pour Over Kettle", Quantity: 2, UnitPriceCents: 1000, TotalCents: 2000},
			}, nil
		},
	}
	svc := NewOrderService(repo)

	detail, err := svc.GetUserOrder(context.Background(), testUserID, testOrderID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "Pour Over Kettle", detail.Items[0].ProductName)
	assert.Equal(t, int32(2500), detail.Order.TotalCents)
}

func TestCancelOrder_PendingOrder(t *testing.T) {
	repo := &mockQuerier{
		GetOrderByIDFunc: func(ctx context.Context, id pgtype.UUID) (repository.Order, error) {
			return orderWithStatus(domain.OrderStatusPending), nil
		},
		UpdateOrderStatusFunc: func(ctx context.Context, arg repository.UpdateOrderStatusParams) (repository.Order, error) {
			assert.Equal(t, string(domain.OrderStatusCancelled), arg.Status)
			return orderWithStatus(domain.OrderStatusCancelled), nil
		},
	}
	svc := NewOrderService(repo)

	order, err := svc.CancelOrder(context.Background(), testUserID, testOrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, order.Status)
}

func TestCancelOrder_ShippedOrder(t *testing.T) {
	repo := &mockQuerier{
		GetOrderByIDFunc: func(ctx context.Context, id pgtype.UUID) (repository.Order, error) {
			return orderWithStatus(domain.OrderStatusShipped), nil
		},
	}
	svc := NewOrderService(repo)

	_, err := svc.CancelOrder(context.Background(), testUserID, testOrderID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestListOrders_InvalidStatusFilter(t *testing.T) {
	svc := NewOrderService(&mockQuerier{})

	_, err := svc.ListOrders(context.Background(), OrderFilter{Status: "on-hold"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetOrder_NotFound(t *testing.T) {
	repo := &mockQuerier{
		GetOrderByIDFunc: func(ctx context.Context, id pgtype.UUID) (repository.Order, error) {
			return repository.Order{}, pgx.ErrNoRows
		},
	}
	svc := NewOrderService(repo)

	_, err := svc.GetOrder(context.Background(), testOrderID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
