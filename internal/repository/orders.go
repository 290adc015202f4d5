package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createOrder = `-- name: CreateOrder :one
INSERT INTO orders (user_id, total_cents, status, shipping_address)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, total_cents, status, shipping_address, created_at, updated_at
`

type CreateOrderParams struct {
	UserID          pgtype.UUID
	TotalCents      int32
	Status          string
	ShippingAddress pgtype.Text
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, createOrder, arg.UserID, arg.TotalCents, arg.Status, arg.ShippingAddress)
	var o Order
	err := row.Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.ShippingAddress, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

const createOrderItem = `-- name: CreateOrderItem :one
INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price_cents, total_cents)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, order_id, product_id, product_name, quantity, unit_price_cents, total_cents
`

type CreateOrderItemParams struct {
	OrderID        pgtype.UUID
	ProductID      pgtype.UUID
	ProductName    string
	Quantity       int32
	UnitPriceCents int32
	TotalCents     int32
}

func (q *Queries) CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error) {
	row := q.db.QueryRow(ctx, createOrderItem,
		arg.OrderID,
		arg.ProductID,
		arg.ProductName,
		arg.Quantity,
		arg.UnitPriceCents,
		arg.TotalCents,
	)
	var i OrderItem
	err := row.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.ProductName, &i.Quantity, &i.UnitPriceCents, &i.TotalCents)
	return i, err
}

const getOrderByID = `-- name: GetOrderByID :one
SELECT id, user_id, total_cents, status, shipping_address, created_at, updated_at
FROM orders
WHERE id = $1
`

func (q *Queries) GetOrderByID(ctx context.Context, id pgtype.UUID) (Order, error) {
	row := q.db.QueryRow(ctx, getOrderByID, id)
	var o Order
	err := row.Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.ShippingAddress, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

const getOrderItems = `-- name: GetOrderItems :many
SELECT id, order_id, product_id, product_name, quantity, unit_price_cents, total_cents
FROM order_items
WHERE order_id = $1
ORDER BY id
`

func (q *Queries) GetOrderItems(ctx context.Context, orderID pgtype.UUID) ([]OrderItem, error) {
	rows, err := q.db.Query(ctx, getOrderItems, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OrderItem
	for rows.Next() {
		var i OrderItem
		if err := rows.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.ProductName, &i.Quantity, &i.UnitPriceCents, &i.TotalCents); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listOrdersByUser = `-- name: ListOrdersByUser :many
SELECT id, user_id, total_cents, status, shipping_address, created_at, updated_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC, id
`

func (q *Queries) ListOrdersByUser(ctx context.Context, userID pgtype.UUID) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrdersByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.ShippingAddress, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

const listOrders = `-- name: ListOrders :many
SELECT id, user_id, total_cents, status, shipping_address, created_at, updated_at
FROM orders
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::uuid IS NULL OR user_id = $2)
ORDER BY created_at DESC, id
LIMIT $3 OFFSET $4
`

type ListOrdersParams struct {
	Status pgtype.Text
	UserID pgtype.UUID
	Limit  int32
	Offset int32
}

func (q *Queries) ListOrders(ctx context.Context, arg ListOrdersParams) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrders, arg.Status, arg.UserID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.ShippingAddress, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

const updateOrderStatus = `-- name: UpdateOrderStatus :one
UPDATE orders
SET status = $2,
    updated_at = now()
WHERE id = $1
RETURNING id, user_id, total_cents, status, shipping_address, created_at, updated_at
`

type UpdateOrderStatusParams struct {
	ID     pgtype.UUID
	Status string
}

func (q *Queries) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error) {
	row := q.db.QueryRow(ctx, updateOrderStatus, arg.ID, arg.Status)
	var o Order
	err := row.Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.ShippingAddress, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

const countOrders = `-- name: CountOrders :one
SELECT count(*) FROM orders
`

func (q *Queries) CountOrders(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countOrders)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countOrdersByStatus = `-- name: CountOrdersByStatus :one
SELECT count(*) FROM orders WHERE status = $1
`

func (q *Queries) CountOrdersByStatus(ctx context.Context, status string) (int64, error) {
	row := q.db.QueryRow(ctx, countOrdersByStatus, status)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countOrdersSince = `-- name: CountOrdersSince :one
SELECT count(*) FROM orders WHERE created_at >= $1
`

func (q *Queries) CountOrdersSince(ctx context.Context, since pgtype.Timestamptz) (int64, error) {
	row := q.db.QueryRow(ctx, countOrdersSince, since)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const sumOrderRevenue = `-- name: SumOrderRevenue :one
SELECT COALESCE(sum(total_cents), 0)::bigint
FROM orders
WHERE status <> 'cancelled'
`

func (q *Queries) SumOrderRevenue(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, sumOrderRevenue)
	var sum int64
	err := row.Scan(&sum)
	return sum, err
}

const sumOrderRevenueSince = `-- name: SumOrderRevenueSince :one
SELECT COALESCE(sum(total_cents), 0)::bigint
FROM orders
WHERE status <> 'cancelled' AND created_at >= $1
`

func (q *Queries) SumOrderRevenueSince(ctx context.Context, since pgtype.Timestamptz) (int64, error) {
	row := q.db.QueryRow(ctx, sumOrderRevenueSince, since)
	var sum int64
	err := row.Scan(&sum)
	return sum, err
}

const topProductsSince = `-- name: TopProductsSince :many
SELECT oi.product_id, oi.product_name,
       sum(oi.quantity)::bigint AS units_sold,
       sum(oi.total_cents)::bigint AS revenue_cents
FROM order_items oi
JOIN orders o ON o.id = oi.order_id
WHERE o.status <> 'cancelled' AND o.created_at >= $1
GROUP BY oi.product_id, oi.product_name
ORDER BY sum(oi.quantity) DESC
LIMIT $2
`

type TopProductsSinceParams struct {
	Since pgtype.Timestamptz
	Limit int32
}

type TopProductsSinceRow struct {
	ProductID    pgtype.UUID
	ProductName  string
	UnitsSold    int64
	RevenueCents int64
}

func (q *Queries) TopProductsSince(ctx context.Context, arg TopProductsSinceParams) ([]TopProductsSinceRow, error) {
	rows, err := q.db.Query(ctx, topProductsSince, arg.Since, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TopProductsSinceRow
	for rows.Next() {
		var r TopProductsSinceRow
		if err := rows.Scan(&r.ProductID, &r.ProductName, &r.UnitsSold, &r.RevenueCents); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
