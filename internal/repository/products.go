package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createProduct = `-- name: CreateProduct :one
INSERT INTO products (name, description, price_cents, quantity, image_url, category, sku)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, name, description, price_cents, quantity, image_url, category, sku, is_active, created_at, updated_at
`

type CreateProductParams struct {
	Name        string
	Description string
	PriceCents  int32
	Quantity    int32
	ImageUrl    pgtype.Text
	Category    pgtype.Text
	Sku         pgtype.Text
}

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, createProduct,
		arg.Name,
		arg.Description,
		arg.PriceCents,
		arg.Quantity,
		arg.ImageUrl,
		arg.Category,
		arg.Sku,
	)
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.PriceCents,
		&p.Quantity,
		&p.ImageUrl,
		&p.Category,
		&p.Sku,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const getProductByID = `-- name: GetProductByID :one
SELECT id, name, description, price_cents, quantity, image_url, category, sku, is_active, created_at, updated_at
FROM products
WHERE id = $1
`

func (q *Queries) GetProductByID(ctx context.Context, id pgtype.UUID) (Product, error) {
	row := q.db.QueryRow(ctx, getProductByID, id)
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.PriceCents,
		&p.Quantity,
		&p.ImageUrl,
		&p.Category,
		&p.Sku,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const listProducts = `-- name: ListProducts :many
SELECT id, name, description, price_cents, quantity, image_url, category, sku, is_active, created_at, updated_at
FROM products
WHERE ($1::text IS NULL OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
  AND ($2::text IS NULL OR category = $2)
  AND (NOT $3::boolean OR quantity < $4)
  AND (NOT $5::boolean OR is_active)
ORDER BY created_at, id
LIMIT $6 OFFSET $7
`

type ListProductsParams struct {
	Search        pgtype.Text
	Category      pgtype.Text
	LowStock      bool
	LowStockBelow int32
	ActiveOnly    bool
	Limit         int32
	Offset        int32
}

func (q *Queries) ListProducts(ctx context.Context, arg ListProductsParams) ([]Product, error) {
	rows, err := q.db.Query(ctx, listProducts,
		arg.Search,
		arg.Category,
		arg.LowStock,
		arg.LowStockBelow,
		arg.ActiveOnly,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.PriceCents,
			&p.Quantity,
			&p.ImageUrl,
			&p.Category,
			&p.Sku,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const updateProduct = `-- name: UpdateProduct :one
UPDATE products
SET name = $2,
    description = $3,
    price_cents = $4,
    quantity = $5,
    image_url = $6,
    category = $7,
    sku = $8,
    is_active = $9,
    updated_at = now()
WHERE id = $1
RETURNING id, name, description, price_cents, quantity, image_url, category, sku, is_active, created_at, updated_at
`

type UpdateProductParams struct {
	ID          pgtype.UUID
	Name        string
	Description string
	PriceCents  int32
	Quantity    int32
	ImageUrl    pgtype.Text
	Category    pgtype.Text
	Sku         pgtype.Text
	IsActive    bool
}

func (q *Queries) UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, updateProduct,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.PriceCents,
		arg.Quantity,
		arg.ImageUrl,
		arg.Category,
		arg.Sku,
		arg.IsActive,
	)
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.PriceCents,
		&p.Quantity,
		&p.ImageUrl,
		&p.Category,
		&p.Sku,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const deactivateProduct = `-- name: DeactivateProduct :execrows
UPDATE products
SET is_active = false,
    updated_at = now()
WHERE id = $1
`

func (q *Queries) DeactivateProduct(ctx context.Context, id pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deactivateProduct, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const countProducts = `-- name: CountProducts :one
SELECT count(*) FROM products
`

func (q *Queries) CountProducts(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countProducts)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countLowStockProducts = `-- name: CountLowStockProducts :one
SELECT count(*) FROM products WHERE quantity < $1 AND is_active
`

func (q *Queries) CountLowStockProducts(ctx context.Context, below int32) (int64, error) {
	row := q.db.QueryRow(ctx, countLowStockProducts, below)
	var count int64
	err := row.Scan(&count)
	return count, err
}
