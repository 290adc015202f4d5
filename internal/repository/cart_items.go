package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertCartItem = `-- name: InsertCartItem :one
INSERT INTO cart_items (user_id, product_id, quantity)
VALUES ($1, $2, $3)
RETURNING id, user_id, product_id, quantity, created_at, updated_at
`

type InsertCartItemParams struct {
	UserID    pgtype.UUID
	ProductID pgtype.UUID
	Quantity  int32
}

func (q *Queries) InsertCartItem(ctx context.Context, arg InsertCartItemParams) (CartItem, error) {
	row := q.db.QueryRow(ctx, insertCartItem, arg.UserID, arg.ProductID, arg.Quantity)
	var i CartItem
	err := row.Scan(&i.ID, &i.UserID, &i.ProductID, &i.Quantity, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const addCartItemQuantity = `-- name: AddCartItemQuantity :one
UPDATE cart_items
SET quantity = quantity + $3,
    updated_at = now()
WHERE user_id = $1 AND product_id = $2
RETURNING id, user_id, product_id, quantity, created_at, updated_at
`

type AddCartItemQuantityParams struct {
	UserID    pgtype.UUID
	ProductID pgtype.UUID
	Quantity  int32
}

func (q *Queries) AddCartItemQuantity(ctx context.Context, arg AddCartItemQuantityParams) (CartItem, error) {
	row := q.db.QueryRow(ctx, addCartItemQuantity, arg.UserID, arg.ProductID, arg.Quantity)
	var i CartItem
	err := row.Scan(&i.ID, &i.UserID, &i.ProductID, &i.Quantity, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const findCartItem = `-- name: FindCartItem :one
SELECT id, user_id, product_id, quantity, created_at, updated_at
FROM cart_items
WHERE user_id = $1 AND product_id = $2
`

type FindCartItemParams struct {
	UserID    pgtype.UUID
	ProductID pgtype.UUID
}

func (q *Queries) FindCartItem(ctx context.Context, arg FindCartItemParams) (CartItem, error) {
	row := q.db.QueryRow(ctx, findCartItem, arg.UserID, arg.ProductID)
	var i CartItem
	err := row.Scan(&i.ID, &i.UserID, &i.ProductID, &i.Quantity, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getCartItem = `-- name: GetCartItem :one
SELECT id, user_id, product_id, quantity, created_at, updated_at
FROM cart_items
WHERE id = $1
`

func (q *Queries) GetCartItem(ctx context.Context, id pgtype.UUID) (CartItem, error) {
	row := q.db.QueryRow(ctx, getCartItem, id)
	var i CartItem
	err := row.Scan(&i.ID, &i.UserID, &i.ProductID, &i.Quantity, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getCartItemsByUser = `-- name: GetCartItemsByUser :many
SELECT id, user_id, product_id, quantity, created_at, updated_at
FROM cart_items
WHERE user_id = $1
ORDER BY created_at, id
`

func (q *Queries) GetCartItemsByUser(ctx context.Context, userID pgtype.UUID) ([]CartItem, error) {
	rows, err := q.db.Query(ctx, getCartItemsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CartItem
	for rows.Next() {
		var i CartItem
		if err := rows.Scan(&i.ID, &i.UserID, &i.ProductID, &i.Quantity, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listCartItems = `-- name: ListCartItems :many
SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, ci.created_at,
       p.name AS product_name, p.price_cents AS unit_price_cents, p.image_url, p.is_active AS product_active
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.user_id = $1
ORDER BY ci.created_at, ci.id
`

type ListCartItemsRow struct {
	ID             pgtype.UUID
	UserID         pgtype.UUID
	ProductID      pgtype.UUID
	Quantity       int32
	CreatedAt      pgtype.Timestamptz
	ProductName    string
	UnitPriceCents int32
	ImageUrl       pgtype.Text
	ProductActive  bool
}

func (q *Queries) ListCartItems(ctx context.Context, userID pgtype.UUID) ([]ListCartItemsRow, error) {
	rows, err := q.db.Query(ctx, listCartItems, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListCartItemsRow
	for rows.Next() {
		var r ListCartItemsRow
		if err := rows.Scan(
			&r.ID,
			&r.UserID,
			&r.ProductID,
			&r.Quantity,
			&r.CreatedAt,
			&r.ProductName,
			&r.UnitPriceCents,
			&r.ImageUrl,
			&r.ProductActive,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const updateCartItemQuantity = `-- name: UpdateCartItemQuantity :one
UPDATE cart_items
SET quantity = $2,
    updated_at = now()
WHERE id = $1
RETURNING id, user_id, product_id, quantity, created_at, updated_at
`

type UpdateCartItemQuantityParams struct {
	ID       pgtype.UUID
	Quantity int32
}

func (q *Queries) UpdateCartItemQuantity(ctx context.Context, arg UpdateCartItemQuantityParams) (CartItem, error) {
	row := q.db.QueryRow(ctx, updateCartItemQuantity, arg.ID, arg.Quantity)
	var i CartItem
	err := row.Scan(&i.ID, &i.UserID, &i.ProductID, &i.Quantity, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const deleteCartItem = `-- name: DeleteCartItem :execrows
DELETE FROM cart_items
WHERE id = $1
`

func (q *Queries) DeleteCartItem(ctx context.Context, id pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteCartItem, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const clearCart = `-- name: ClearCart :execrows
DELETE FROM cart_items
WHERE user_id = $1
`

func (q *Queries) ClearCart(ctx context.Context, userID pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, clearCart, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
