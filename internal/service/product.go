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

// DefaultLowStockThreshold flags products running low on the dashboard.
const DefaultLowStockThreshold = 10

// ProductService provides business logic for the product catalog
type ProductService interface {
	CreateProduct(ctx context.Context, params ProductParams) (*Product, error)
	GetProduct(ctx context.Context, productID pgtype.UUID, includeInactive bool) (*Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error)
	UpdateProduct(ctx context.Context, productID pgtype.UUID, params ProductParams) (*Product, error)
	DeactivateProduct(ctx context.Context, productID pgtype.UUID) error
}

// Product represents a catalog view model
type Product struct {
	ID          pgtype.UUID
	Name        string
	Description string
	PriceCents  int32
	Quantity    int32
	ImageURL    string
	Category    string
	SKU         string
	IsActive    bool
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

// ProductParams carries the editable catalog fields
type ProductParams struct {
	Name        string
	Description string
	PriceCents  int32
	Quantity    int32
	ImageURL    string
	Category    string
	SKU         string
	IsActive    *bool
}

// ProductFilter narrows catalog listings
type ProductFilter struct {
	Search          string
	Category        string
	LowStock        bool
	IncludeInactive bool
	Limit           int32
	Offset          int32
}

func newProduct(p repository.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Quantity:    p.Quantity,
		ImageURL:    p.ImageUrl.String,
		Category:    p.Category.String,
		SKU:         p.Sku.String,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p ProductParams) validate(op string) error {
	if p.Name == "" {
		return domain.Errorf(domain.EINVALID, op, "Product name is required")
	}
	if p.PriceCents < 0 {
		return domain.Errorf(domain.EINVALID, op, "Price cannot be negative")
	}
	if p.Quantity < 0 {
		return domain.Errorf(domain.EINVALID, op, "Stock quantity cannot be negative")
	}
	return nil
}

type productService struct {
	repo repository.Querier
}

// NewProductService creates a new ProductService instance
func NewProductService(repo repository.Querier) ProductService {
	return &productService{repo: repo}
}

// CreateProduct adds a product to the catalog.
func (s *productService) CreateProduct(ctx context.Context, params ProductParams) (*Product, error) {
	if err := params.validate("service.CreateProduct"); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateProduct(ctx, repository.CreateProductParams{
		Name:        params.Name,
		Description: params.Description,
		PriceCents:  params.PriceCents,
		Quantity:    params.Quantity,
		ImageUrl:    optionalText(params.ImageURL),
		Category:    optionalText(params.Category),
		Sku:         optionalText(params.SKU),
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, domain.Errorf(domain.ECONFLICT, "service.CreateProduct", "A product with this SKU already exists")
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	product := newProduct(created)
	return &product, nil
}

// GetProduct loads a single product. Storefront callers pass
// includeInactive=false so deactivated products look deleted; the admin
// panel passes true to keep editing them.
func (s *productService) GetProduct(ctx context.Context, productID pgtype.UUID, includeInactive bool) (*Product, error) {
	record, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if !record.IsActive && !includeInactive {
		return nil, ErrProductNotFound
	}

	product := newProduct(record)
	return &product, nil
}

// ListProducts returns catalog entries with optional filters.
func (s *productService) ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error) {
	params := repository.ListProductsParams{
		LowStock:      filter.LowStock,
		LowStockBelow: DefaultLowStockThreshold,
		ActiveOnly:    !filter.IncludeInactive,
		Limit:         filter.Limit,
		Offset:        filter.Offset,
	}
	if params.Limit <= 0 || params.Limit > 100 {
		params.Limit = 50
	}
	if filter.Search != "" {
		params.Search = pgtype.Text{String: filter.Search, Valid: true}
	}
	if filter.Category != "" {
		params.Category = pgtype.Text{String: filter.Category, Valid: true}
	}

	rows, err := s.repo.ListProducts(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, newProduct(row))
	}
	return products, nil
}

// UpdateProduct replaces a product's catalog fields. Existing order items
// keep their price snapshots, so edits never rewrite order history.
func (s *productService) UpdateProduct(ctx context.Context, productID pgtype.UUID, params ProductParams) (*Product, error) {
	if err := params.validate("service.UpdateProduct"); err != nil {
		return nil, err
	}

	record, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	isActive := record.IsActive
	if params.IsActive != nil {
		isActive = *params.IsActive
	}

	updated, err := s.repo.UpdateProduct(ctx, repository.UpdateProductParams{
		ID:          productID,
		Name:        params.Name,
		Description: params.Description,
		PriceCents:  params.PriceCents,
		Quantity:    params.Quantity,
		ImageUrl:    optionalText(params.ImageURL),
		Category:    optionalText(params.Category),
		Sku:         optionalText(params.SKU),
		IsActive:    isActive,
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, domain.Errorf(domain.ECONFLICT, "service.UpdateProduct", "A product with this SKU already exists")
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	product := newProduct(updated)
	return &product, nil
}

// DeactivateProduct soft deletes a product. The row stays so order items
// and reviews keep a valid reference.
func (s *productService) DeactivateProduct(ctx context.Context, productID pgtype.UUID) error {
	rows, err := s.repo.DeactivateProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to deactivate product: %w", err)
	}
	if rows == 0 {
		return ErrProductNotFound
	}
	return nil
}
