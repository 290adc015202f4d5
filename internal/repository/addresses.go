package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createAddress = `-- name: CreateAddress :one
INSERT INTO addresses (user_id, full_name, line1, line2, city, state, postal_code, country, phone, is_default)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, user_id, full_name, line1, line2, city, state, postal_code, country, phone, is_default, created_at, updated_at
`

type CreateAddressParams struct {
	UserID     pgtype.UUID
	FullName   string
	Line1      string
	Line2      pgtype.Text
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      pgtype.Text
	IsDefault  bool
}

func (q *Queries) CreateAddress(ctx context.Context, arg CreateAddressParams) (Address, error) {
	row := q.db.QueryRow(ctx, createAddress,
		arg.UserID,
		arg.FullName,
		arg.Line1,
		arg.Line2,
		arg.City,
		arg.State,
		arg.PostalCode,
		arg.Country,
		arg.Phone,
		arg.IsDefault,
	)
	var a Address
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.FullName,
		&a.Line1,
		&a.Line2,
		&a.City,
		&a.State,
		&a.PostalCode,
		&a.Country,
		&a.Phone,
		&a.IsDefault,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

const getAddress = `-- name: GetAddress :one
SELECT id, user_id, full_name, line1, line2, city, state, postal_code, country, phone, is_default, created_at, updated_at
FROM addresses
WHERE id = $1 AND user_id = $2
`

type GetAddressParams struct {
	ID     pgtype.UUID
	UserID pgtype.UUID
}

func (q *Queries) GetAddress(ctx context.Context, arg GetAddressParams) (Address, error) {
	row := q.db.QueryRow(ctx, getAddress, arg.ID, arg.UserID)
	var a Address
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.FullName,
		&a.Line1,
		&a.Line2,
		&a.City,
		&a.State,
		&a.PostalCode,
		&a.Country,
		&a.Phone,
		&a.IsDefault,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

const listAddressesByUser = `-- name: ListAddressesByUser :many
SELECT id, user_id, full_name, line1, line2, city, state, postal_code, country, phone, is_default, created_at, updated_at
FROM addresses
WHERE user_id = $1
ORDER BY created_at, id
`

func (q *Queries) ListAddressesByUser(ctx context.Context, userID pgtype.UUID) ([]Address, error) {
	rows, err := q.db.Query(ctx, listAddressesByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Address
	for rows.Next() {
		var a Address
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.FullName,
			&a.Line1,
			&a.Line2,
			&a.City,
			&a.State,
			&a.PostalCode,
			&a.Country,
			&a.Phone,
			&a.IsDefault,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

const updateAddress = `-- name: UpdateAddress :one
UPDATE addresses
SET full_name = $3,
    line1 = $4,
    line2 = $5,
    city = $6,
    state = $7,
    postal_code = $8,
    country = $9,
    phone = $10,
    updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, full_name, line1, line2, city, state, postal_code, country, phone, is_default, created_at, updated_at
`

type UpdateAddressParams struct {
	ID         pgtype.UUID
	UserID     pgtype.UUID
	FullName   string
	Line1      string
	Line2      pgtype.Text
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      pgtype.Text
}

func (q *Queries) UpdateAddress(ctx context.Context, arg UpdateAddressParams) (Address, error) {
	row := q.db.QueryRow(ctx, updateAddress,
		arg.ID,
		arg.UserID,
		arg.FullName,
		arg.Line1,
		arg.Line2,
		arg.City,
		arg.State,
		arg.PostalCode,
		arg.Country,
		arg.Phone,
	)
	var a Address
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.FullName,
		&a.Line1,
		&a.Line2,
		&a.City,
		&a.State,
		&a.PostalCode,
		&a.Country,
		&a.Phone,
		&a.IsDefault,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

const deleteAddress = `-- name: DeleteAddress :execrows
DELETE FROM addresses
WHERE id = $1 AND user_id = $2
`

type DeleteAddressParams struct {
	ID     pgtype.UUID
	UserID pgtype.UUID
}

func (q *Queries) DeleteAddress(ctx context.Context, arg DeleteAddressParams) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteAddress, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const unsetDefaultAddresses = `-- name: UnsetDefaultAddresses :exec
UPDATE addresses
SET is_default = false,
    updated_at = now()
WHERE user_id = $1 AND is_default
`

func (q *Queries) UnsetDefaultAddresses(ctx context.Context, userID pgtype.UUID) error {
	_, err := q.db.Exec(ctx, unsetDefaultAddresses, userID)
	return err
}

const setDefaultAddress = `-- name: SetDefaultAddress :execrows
UPDATE addresses
SET is_default = true,
    updated_at = now()
WHERE id = $1 AND user_id = $2
`

type SetDefaultAddressParams struct {
	ID     pgtype.UUID
	UserID pgtype.UUID
}

func (q *Queries) SetDefaultAddress(ctx context.Context, arg SetDefaultAddressParams) (int64, error) {
	tag, err := q.db.Exec(ctx, setDefaultAddress, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
