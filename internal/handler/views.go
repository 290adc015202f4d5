package handler

import (
	"time"

	"github.com/dukerupert/vanir/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// JSON view models. Services return pgtype-backed structs; these flatten
// them into the wire shapes clients see.

func UUIDString(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}
	return uuid.UUID(id.Bytes).String()
}

func timeString(ts pgtype.Timestamptz) string {
	if !ts.Valid {
		return ""
	}
	return ts.Time.UTC().Format(time.RFC3339)
}

type UserView struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"created_at"`
}

func NewUserView(u *service.User) UserView {
	return UserView{
		ID:        UUIDString(u.ID),
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: timeString(u.CreatedAt),
	}
}

type ProductView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int32  `json:"price_cents"`
	Quantity    int32  `json:"quantity"`
	ImageURL    string `json:"image_url,omitempty"`
	Category    string `json:"category,omitempty"`
	SKU         string `json:"sku,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
}

func NewProductView(p service.Product) ProductView {
	return ProductView{
		ID:          UUIDString(p.ID),
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Quantity:    p.Quantity,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		SKU:         p.SKU,
		IsActive:    p.IsActive,
		CreatedAt:   timeString(p.CreatedAt),
	}
}

func NewProductViews(products []service.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p))
	}
	return views
}

type CartItemView struct {
	ID             string `json:"id"`
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	Quantity       int32  `json:"quantity"`
	UnitPriceCents int32  `json:"unit_price_cents"`
	LineTotalCents int32  `json:"line_total_cents"`
	ImageURL       string `json:"image_url,omitempty"`
	Available      bool   `json:"available"`
}

type CartView struct {
	Items         []CartItemView `json:"items"`
	SubtotalCents int32          `json:"subtotal_cents"`
	ItemCount     int            `json:"item_count"`
}

func NewCartView(summary *service.CartSummary) CartView {
	view := CartView{
		Items:         make([]CartItemView, 0, len(summary.Items)),
		SubtotalCents: summary.SubtotalCents,
		ItemCount:     summary.ItemCount,
	}
	for _, item := range summary.Items {
		view.Items = append(view.Items, CartItemView{
			ID:             UUIDString(item.ID),
			ProductID:      UUIDString(item.ProductID),
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			LineTotalCents: item.LineTotalCents,
			ImageURL:       item.ImageURL,
			Available:      item.Available,
		})
	}
	return view
}

type OrderItemView struct {
	ID             string `json:"id"`
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	Quantity       int32  `json:"quantity"`
	UnitPriceCents int32  `json:"unit_price_cents"`
	TotalCents     int32  `json:"total_cents"`
}

type OrderView struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	TotalCents      int32           `json:"total_cents"`
	Status          string          `json:"status"`
	ShippingAddress string          `json:"shipping_address,omitempty"`
	CreatedAt       string          `json:"created_at"`
	Items           []OrderItemView `json:"items,omitempty"`
}

func NewOrderView(o service.Order) OrderView {
	return OrderView{
		ID:              UUIDString(o.ID),
		UserID:          UUIDString(o.UserID),
		TotalCents:      o.TotalCents,
		Status:          string(o.Status),
		ShippingAddress: o.ShippingAddress,
		CreatedAt:       timeString(o.CreatedAt),
	}
}

func NewOrderViews(orders []service.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views
}

func NewOrderDetailView(detail *service.OrderDetail) OrderView {
	view := NewOrderView(detail.Order)
	view.Items = make([]OrderItemView, 0, len(detail.Items))
	for _, item := range detail.Items {
		view.Items = append(view.Items, OrderItemView{
			ID:             UUIDString(item.ID),
			ProductID:      UUIDString(item.ProductID),
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			TotalCents:     item.TotalCents,
		})
	}
	return view
}

type AddressView struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
	IsDefault  bool   `json:"is_default"`
}

func NewAddressView(a service.Address) AddressView {
	return AddressView{
		ID:         UUIDString(a.ID),
		FullName:   a.FullName,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
		IsDefault:  a.IsDefault,
	}
}

func NewAddressViews(addresses []service.Address) []AddressView {
	views := make([]AddressView, 0, len(addresses))
	for _, a := range addresses {
		views = append(views, NewAddressView(a))
	}
	return views
}

type ReviewView struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Username    string `json:"username,omitempty"`
	Rating      int32  `json:"rating"`
	Title       string `json:"title,omitempty"`
	Comment     string `json:"comment,omitempty"`
	IsApproved  bool   `json:"is_approved"`
	CreatedAt   string `json:"created_at"`
}

func NewReviewView(r service.Review) ReviewView {
	return ReviewView{
		ID:          UUIDString(r.ID),
		ProductID:   UUIDString(r.ProductID),
		ProductName: r.ProductName,
		Username:    r.Username,
		Rating:      r.Rating,
		Title:       r.Title,
		Comment:     r.Comment,
		IsApproved:  r.IsApproved,
		CreatedAt:   timeString(r.CreatedAt),
	}
}

func NewReviewViews(reviews []service.Review) []ReviewView {
	views := make([]ReviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, NewReviewView(r))
	}
	return views
}
