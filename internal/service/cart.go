package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dukerupert/vanir/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// MaxItemQuantity bounds a single cart line. Monetary totals are int32
// cents, so unbounded quantities could wrap when multiplied by a price.
const MaxItemQuantity = 10_000

// CartService provides business logic for shopping cart operations
type CartService interface {
	AddItem(ctx context.Context, userID, productID pgtype.UUID, quantity int32) (*CartSummary, error)
	UpdateItemQuantity(ctx context.Context, userID, itemID pgtype.UUID, quantity int32) (*CartSummary, error)
	RemoveItem(ctx context.Context, userID, itemID pgtype.UUID) (*CartSummary, error)
	GetCartSummary(ctx context.Context, userID pgtype.UUID) (*CartSummary, error)
	ClearCart(ctx context.Context, userID pgtype.UUID) error
	Deduplicate(ctx context.Context, userID pgtype.UUID) (int, error)
}

// CartSummary aggregates cart information with items and calculated totals
type CartSummary struct {
	Items         []CartItem
	SubtotalCents int32
	ItemCount     int
}

// CartItem represents a cart line item with product details and calculated totals
type CartItem struct {
	ID             pgtype.UUID
	ProductID      pgtype.UUID
	ProductName    string
	Quantity       int32
	UnitPriceCents int32
	LineTotalCents int32
	ImageURL       string
	Available      bool
}

type cartService struct {
	repo repository.Querier
	tx   repository.TxStarter
}

// NewCartService creates a new CartService instance
func NewCartService(repo repository.Querier, tx repository.TxStarter) CartService {
	return &cartService{
		repo: repo,
		tx:   tx,
	}
}

// AddItem puts a product into the user's cart. If the product is already in
// the cart the quantities are merged into a single line. Two concurrent adds
// of the same product may both miss the existing row; the unique constraint
// on (user_id, product_id) turns the losing insert into a quantity update.
func (s *cartService) AddItem(ctx context.Context, userID, productID pgtype.UUID, quantity int32) (*CartSummary, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity > MaxItemQuantity {
		return nil, ErrQuantityTooLarge
	}

	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if !product.IsActive {
		return nil, ErrProductUnavailable
	}

	// Check the merged quantity before touching the row. A concurrent add
	// can still slip past this, so checkout re-validates totals.
	existing, err := s.repo.FindCartItem(ctx, repository.FindCartItemParams{
		UserID:    userID,
		ProductID: productID,
	})
	if err == nil {
		if int64(existing.Quantity)+int64(quantity) > MaxItemQuantity {
			return nil, ErrQuantityTooLarge
		}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to find cart item: %w", err)
	}

	_, err = s.repo.AddCartItemQuantity(ctx, repository.AddCartItemQuantityParams{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}

		// No existing line. Insert one, and if another request inserted
		// it first, fold our quantity into that row instead.
		_, err = s.repo.InsertCartItem(ctx, repository.InsertCartItemParams{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		})
		if err != nil {
			if !repository.IsUniqueViolation(err) {
				return nil, fmt.Errorf("failed to insert cart item: %w", err)
			}
			_, err = s.repo.AddCartItemQuantity(ctx, repository.AddCartItemQuantityParams{
				UserID:    userID,
				ProductID: productID,
				Quantity:  quantity,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to merge cart item after conflict: %w", err)
			}
		}
	}

	return s.GetCartSummary(ctx, userID)
}

// UpdateItemQuantity sets the quantity of an existing cart line. A quantity
// of zero or less removes the line.
func (s *cartService) UpdateItemQuantity(ctx context.Context, userID, itemID pgtype.UUID, quantity int32) (*CartSummary, error) {
	item, err := s.repo.GetCartItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	if item.UserID != userID {
		return nil, ErrCartItemNotFound
	}

	if quantity <= 0 {
		if _, err := s.repo.DeleteCartItem(ctx, itemID); err != nil {
			return nil, fmt.Errorf("failed to remove cart item: %w", err)
		}
		return s.GetCartSummary(ctx, userID)
	}
	if quantity > MaxItemQuantity {
		return nil, ErrQuantityTooLarge
	}

	if _, err := s.repo.UpdateCartItemQuantity(ctx, repository.UpdateCartItemQuantityParams{
		ID:       itemID,
		Quantity: quantity,
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to update cart item quantity: %w", err)
	}

	return s.GetCartSummary(ctx, userID)
}

// RemoveItem deletes a single line from the user's cart.
func (s *cartService) RemoveItem(ctx context.Context, userID, itemID pgtype.UUID) (*CartSummary, error) {
	item, err := s.repo.GetCartItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	if item.UserID != userID {
		return nil, ErrCartItemNotFound
	}

	rows, err := s.repo.DeleteCartItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}
	if rows == 0 {
		return nil, ErrCartItemNotFound
	}

	return s.GetCartSummary(ctx, userID)
}

// GetCartSummary loads the user's cart lines with product details and totals.
func (s *cartService) GetCartSummary(ctx context.Context, userID pgtype.UUID) (*CartSummary, error) {
	rows, err := s.repo.ListCartItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	summary := &CartSummary{
		Items: make([]CartItem, 0, len(rows)),
	}
	var subtotal int64
	for _, row := range rows {
		lineTotal := int64(row.UnitPriceCents) * int64(row.Quantity)
		subtotal += lineTotal
		if subtotal > math.MaxInt32 {
			return nil, ErrCartTooLarge
		}
		item := CartItem{
			ID:             row.ID,
			ProductID:      row.ProductID,
			ProductName:    row.ProductName,
			Quantity:       row.Quantity,
			UnitPriceCents: row.UnitPriceCents,
			LineTotalCents: int32(lineTotal),
			ImageURL:       row.ImageUrl.String,
			Available:      row.ProductActive,
		}
		summary.Items = append(summary.Items, item)
		summary.ItemCount += int(row.Quantity)
	}
	summary.SubtotalCents = int32(subtotal)

	return summary, nil
}

// ClearCart removes every line from the user's cart. Clearing an already
// empty cart is not an error.
func (s *cartService) ClearCart(ctx context.Context, userID pgtype.UUID) error {
	if _, err := s.repo.ClearCart(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// Deduplicate collapses duplicate product lines left over from before the
// unique constraint existed. Quantities are summed into the oldest line and
// the rest are deleted. Returns the number of lines removed. Running it on
// a clean cart is a no-op.
func (s *cartService) Deduplicate(ctx context.Context, userID pgtype.UUID) (int, error) {
	removed := 0
	err := s.tx.ExecTx(ctx, func(q repository.Querier) error {
		items, err := q.GetCartItemsByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to list cart items: %w", err)
		}

		keeper := make(map[pgtype.UUID]repository.CartItem)
		totals := make(map[pgtype.UUID]int32)
		var extras []repository.CartItem
		for _, item := range items {
			if _, ok := keeper[item.ProductID]; !ok {
				keeper[item.ProductID] = item
			} else {
				extras = append(extras, item)
			}
			totals[item.ProductID] += item.Quantity
		}

		for _, extra := range extras {
			if _, err := q.DeleteCartItem(ctx, extra.ID); err != nil {
				return fmt.Errorf("failed to delete duplicate cart item: %w", err)
			}
			removed++

			kept := keeper[extra.ProductID]
			if _, err := q.UpdateCartItemQuantity(ctx, repository.UpdateCartItemQuantityParams{
				ID:       kept.ID,
				Quantity: totals[extra.ProductID],
			}); err != nil {
				return fmt.Errorf("failed to merge duplicate cart item: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		removed = 0
	}
	return removed, err
}
