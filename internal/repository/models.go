package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID           pgtype.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	FirstName    pgtype.Text
	LastName     pgtype.Text
	Phone        pgtype.Text
	Address      pgtype.Text
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Product struct {
	ID          pgtype.UUID
	Name        string
	Description string
	PriceCents  int32
	Quantity    int32
	ImageUrl    pgtype.Text
	Category    pgtype.Text
	Sku         pgtype.Text
	IsActive    bool
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type CartItem struct {
	ID        pgtype.UUID
	UserID    pgtype.UUID
	ProductID pgtype.UUID
	Quantity  int32
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Order struct {
	ID              pgtype.UUID
	UserID          pgtype.UUID
	TotalCents      int32
	Status          string
	ShippingAddress pgtype.Text
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type OrderItem struct {
	ID             pgtype.UUID
	OrderID        pgtype.UUID
	ProductID      pgtype.UUID
	ProductName    string
	Quantity       int32
	UnitPriceCents int32
	TotalCents     int32
}

type Address struct {
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
	IsDefault  bool
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

type Review struct {
	ID         pgtype.UUID
	UserID     pgtype.UUID
	ProductID  pgtype.UUID
	Rating     int32
	Title      pgtype.Text
	Comment    pgtype.Text
	IsApproved bool
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}
