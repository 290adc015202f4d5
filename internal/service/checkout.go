package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/dukerupert/vanir/internal/repository"
	"github.com/jackc/pgx/v5/pgtype"
)

// CheckoutService converts a cart into an order
type CheckoutService interface {
	Checkout(ctx context.Context, userID pgtype.UUID, shippingAddress string) (*OrderDetail, error)
}

type checkoutService struct {
	repo   repository.Querier
	tx     repository.TxStarter
	logger *slog.Logger
}

// NewCheckoutService creates a new CheckoutService instance
func NewCheckoutService(repo repository.Querier, tx repository.TxStarter, logger *slog.Logger) CheckoutService {
	return &checkoutService{
		repo:   repo,
		tx:     tx,
		logger: logger,
	}
}

// Checkout creates an order from the user's cart and empties the cart.
// Prices and product names are copied onto the order items so later catalog
// edits never change what a past order cost. Order creation, item creation
// and the cart wipe happen in one transaction; if any step fails the cart
// is left untouched.
func (s *checkoutService) Checkout(ctx context.Context, userID pgtype.UUID, shippingAddress string) (*OrderDetail, error) {
	lines, err := s.repo.ListCartItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	// Totals are accumulated in int64 so an oversized line cannot wrap
	// the int32 cents stored on the order.
	var totalCents int64
	for _, line := range lines {
		if !line.ProductActive {
			return nil, ErrProductUnavailable
		}
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		totalCents += int64(line.UnitPriceCents) * int64(line.Quantity)
		if totalCents > math.MaxInt32 {
			return nil, ErrCartTooLarge
		}
	}

	shipping := pgtype.Text{}
	if shippingAddress != "" {
		shipping = pgtype.Text{String: shippingAddress, Valid: true}
	}

	var detail *OrderDetail
	err = s.tx.ExecTx(ctx, func(q repository.Querier) error {
		order, err := q.CreateOrder(ctx, repository.CreateOrderParams{
			UserID:          userID,
			TotalCents:      int32(totalCents),
			Status:          "pending",
			ShippingAddress: shipping,
		})
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		items := make([]OrderItem, 0, len(lines))
		for _, line := range lines {
			item, err := q.CreateOrderItem(ctx, repository.CreateOrderItemParams{
				OrderID:        order.ID,
				ProductID:      line.ProductID,
				ProductName:    line.ProductName,
				Quantity:       line.Quantity,
				UnitPriceCents: line.UnitPriceCents,
				TotalCents:     int32(int64(line.UnitPriceCents) * int64(line.Quantity)),
			})
			if err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
			items = append(items, newOrderItem(item))
		}

		if _, err := q.ClearCart(ctx, userID); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		detail = &OrderDetail{
			Order: newOrder(order),
			Items: items,
		}
		return nil
	})
	if err != nil {
		s.logger.Error("checkout failed",
			"user_id", userID,
			"error", err,
		)
		return nil, ErrCheckoutFailed
	}

	s.logger.Info("order placed",
		"user_id", userID,
		"order_id", detail.Order.ID,
		"total_cents", detail.Order.TotalCents,
		"items", len(detail.Items),
	)

	return detail, nil
}
