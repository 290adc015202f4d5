package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// Querier is the interface services depend on. *Queries implements it;
// tests substitute a mock.
type Querier interface {
	// Users
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUserByID(ctx context.Context, id pgtype.UUID) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	ListUsers(ctx context.Context, arg ListUsersParams) ([]User, error)
	UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error)
	DeactivateUser(ctx context.Context, id pgtype.UUID) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	CountUsersSince(ctx context.Context, since pgtype.Timestamptz) (int64, error)

	// Products
	CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error)
	GetProductByID(ctx context.Context, id pgtype.UUID) (Product, error)
	ListProducts(ctx context.Context, arg ListProductsParams) ([]Product, error)
	UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error)
	DeactivateProduct(ctx context.Context, id pgtype.UUID) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountLowStockProducts(ctx context.Context, below int32) (int64, error)

	// Cart items
	InsertCartItem(ctx context.Context, arg InsertCartItemParams) (CartItem, error)
	AddCartItemQuantity(ctx context.Context, arg AddCartItemQuantityParams) (CartItem, error)
	FindCartItem(ctx context.Context, arg FindCartItemParams) (CartItem, error)
	GetCartItem(ctx context.Context, id pgtype.UUID) (CartItem, error)
	GetCartItemsByUser(ctx context.Context, userID pgtype.UUID) ([]CartItem, error)
	ListCartItems(ctx context.Context, userID pgtype.UUID) ([]ListCartItemsRow, error)
	UpdateCartItemQuantity(ctx context.Context, arg UpdateCartItemQuantityParams) (CartItem, error)
	DeleteCartItem(ctx context.Context, id pgtype.UUID) (int64, error)
	ClearCart(ctx context.Context, userID pgtype.UUID) (int64, error)

	// Orders
	CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error)
	CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error)
	GetOrderByID(ctx context.Context, id pgtype.UUID) (Order, error)
	GetOrderItems(ctx context.Context, orderID pgtype.UUID) ([]OrderItem, error)
	ListOrdersByUser(ctx context.Context, userID pgtype.UUID) ([]Order, error)
	ListOrders(ctx context.Context, arg ListOrdersParams) ([]Order, error)
	UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error)
	CountOrders(ctx context.Context) (int64, error)
	CountOrdersByStatus(ctx context.Context, status string) (int64, error)
	CountOrdersSince(ctx context.Context, since pgtype.Timestamptz) (int64, error)
	SumOrderRevenue(ctx context.Context) (int64, error)
	SumOrderRevenueSince(ctx context.Context, since pgtype.Timestamptz) (int64, error)
	TopProductsSince(ctx context.Context, arg TopProductsSinceParams) ([]TopProductsSinceRow, error)

	// Addresses
	CreateAddress(ctx context.Context, arg CreateAddressParams) (Address, error)
	GetAddress(ctx context.Context, arg GetAddressParams) (Address, error)
	ListAddressesByUser(ctx context.Context, userID pgtype.UUID) ([]Address, error)
	UpdateAddress(ctx context.Context, arg UpdateAddressParams) (Address, error)
	DeleteAddress(ctx context.Context, arg DeleteAddressParams) (int64, error)
	UnsetDefaultAddresses(ctx context.Context, userID pgtype.UUID) error
	SetDefaultAddress(ctx context.Context, arg SetDefaultAddressParams) (int64, error)

	// Reviews
	CreateReview(ctx context.Context, arg CreateReviewParams) (Review, error)
	FindReviewByUserAndProduct(ctx context.Context, arg FindReviewByUserAndProductParams) (Review, error)
	ListApprovedReviews(ctx context.Context, arg ListApprovedReviewsParams) ([]ListApprovedReviewsRow, error)
	ListReviewsByUser(ctx context.Context, arg ListReviewsByUserParams) ([]ListReviewsByUserRow, error)
	GetReviewSummary(ctx context.Context, productID pgtype.UUID) (GetReviewSummaryRow, error)
	GetRatingDistribution(ctx context.Context, productID pgtype.UUID) ([]GetRatingDistributionRow, error)
	SetReviewApproval(ctx context.Context, arg SetReviewApprovalParams) (int64, error)
	DeleteReview(ctx context.Context, id pgtype.UUID) (int64, error)
}

var _ Querier = (*Queries)(nil)
