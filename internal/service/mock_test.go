package service

import (
	"context"
	"errors"

	"github.com/dukerupert/vanir/internal/repository"
	"github.com/jackc/pgx/v5/pgtype"
)

// mockQuerier implements repository.Querier with overridable functions.
// Methods a test does not stub fail loudly.
type mockQuerier struct {
	CreateUserFunc        func(ctx context.Context, arg repository.CreateUserParams) (repository.User, error)
	GetUserByIDFunc       func(ctx context.Context, id pgtype.UUID) (repository.User, error)
	GetUserByUsernameFunc func(ctx context.Context, username string) (repository.User, error)
	ListUsersFunc         func(ctx context.Context, arg repository.ListUsersParams) ([]repository.User, error)
	UpdateUserFunc        func(ctx context.Context, arg repository.UpdateUserParams) (repository.User, error)
	DeactivateUserFunc    func(ctx context.Context, id pgtype.UUID) (int64, error)
	CountUsersFunc        func(ctx context.Context) (int64, error)
	CountUsersSinceFunc   func(ctx context.Context, since pgtype.Timestamptz) (int64, error)

	CreateProductFunc         func(ctx context.Context, arg repository.CreateProductParams) (repository.Product, error)
	GetProductByIDFunc        func(ctx context.Context, id pgtype.UUID) (repository.Product, error)
	ListProductsFunc          func(ctx context.Context, arg repository.ListProductsParams) ([]repository.Product, error)
	UpdateProductFunc         func(ctx context.Context, arg repository.UpdateProductParams) (repository.Product, error)
	DeactivateProductFunc     func(ctx context.Context, id pgtype.UUID) (int64, error)
	CountProductsFunc         func(ctx context.Context) (int64, error)
	CountLowStockProductsFunc func(ctx context.Context, below int32) (int64, error)

	InsertCartItemFunc         func(ctx context.Context, arg repository.InsertCartItemParams) (repository.CartItem, error)
	AddCartItemQuantityFunc    func(ctx context.Context, arg repository.AddCartItemQuantityParams) (repository.CartItem, error)
	FindCartItemFunc           func(ctx context.Context, arg repository.FindCartItemParams) (repository.CartItem, error)
	GetCartItemFunc            func(ctx context.Context, id pgtype.UUID) (repository.CartItem, error)
	GetCartItemsByUserFunc     func(ctx context.Context, userID pgtype.UUID) ([]repository.CartItem, error)
	ListCartItemsFunc          func(ctx context.Context, userID pgtype.UUID) ([]repository.ListCartItemsRow, error)
	UpdateCartItemQuantityFunc func(ctx context.Context, arg repository.UpdateCartItemQuantityParams) (repository.CartItem, error)
	DeleteCartItemFunc         func(ctx context.Context, id pgtype.UUID) (int64, error)
	ClearCartFunc              func(ctx context.Context, userID pgtype.UUID) (int64, error)

	CreateOrderFunc          func(ctx context.Context, arg repository.CreateOrderParams) (repository.Order, error)
	CreateOrderItemFunc      func(ctx context.Context, arg repository.CreateOrderItemParams) (repository.OrderItem, error)
	GetOrderByIDFunc         func(ctx context.Context, id pgtype.UUID) (repository.Order, error)
	GetOrderItemsFunc        func(ctx context.Context, orderID pgtype.UUID) ([]repository.OrderItem, error)
	ListOrdersByUserFunc     func(ctx context.Context, userID pgtype.UUID) ([]repository.Order, error)
	ListOrdersFunc           func(ctx context.Context, arg repository.ListOrdersParams) ([]repository.Order, error)
	UpdateOrderStatusFunc    func(ctx context.Context, arg repository.UpdateOrderStatusParams) (repository.Order, error)
	CountOrdersFunc          func(ctx context.Context) (int64, error)
	CountOrdersByStatusFunc  func(ctx context.Context, status string) (int64, error)
	CountOrdersSinceFunc     func(ctx context.Context, since pgtype.Timestamptz) (int64, error)
	SumOrderRevenueFunc      func(ctx context.Context) (int64, error)
	SumOrderRevenueSinceFunc func(ctx context.Context, since pgtype.Timestamptz) (int64, error)
	TopProductsSinceFunc     func(ctx context.Context, arg repository.TopProductsSinceParams) ([]repository.TopProductsSinceRow, error)

	CreateAddressFunc         func(ctx context.Context, arg repository.CreateAddressParams) (repository.Address, error)
	GetAddressFunc            func(ctx context.Context, arg repository.GetAddressParams) (repository.Address, error)
	ListAddressesByUserFunc   func(ctx context.Context, userID pgtype.UUID) ([]repository.Address, error)
	UpdateAddressFunc         func(ctx context.Context, arg repository.UpdateAddressParams) (repository.Address, error)
	DeleteAddressFunc         func(ctx context.Context, arg repository.DeleteAddressParams) (int64, error)
	UnsetDefaultAddressesFunc func(ctx context.Context, userID pgtype.UUID) error
	SetDefaultAddressFunc     func(ctx context.Context, arg repository.SetDefaultAddressParams) (int64, error)

	CreateReviewFunc               func(ctx context.Context, arg repository.CreateReviewParams) (repository.Review, error)
	FindReviewByUserAndProductFunc func(ctx context.Context, arg repository.FindReviewByUserAndProductParams) (repository.Review, error)
	ListApprovedReviewsFunc        func(ctx context.Context, arg repository.ListApprovedReviewsParams) ([]repository.ListApprovedReviewsRow, error)
	ListReviewsByUserFunc          func(ctx context.Context, arg repository.ListReviewsByUserParams) ([]repository.ListReviewsByUserRow, error)
	GetReviewSummaryFunc           func(ctx context.Context, productID pgtype.UUID) (repository.GetReviewSummaryRow, error)
	GetRatingDistributionFunc      func(ctx context.Context, productID pgtype.UUID) ([]repository.GetRatingDistributionRow, error)
	SetReviewApprovalFunc          func(ctx context.Context, arg repository.SetReviewApprovalParams) (int64, error)
	DeleteReviewFunc               func(ctx context.Context, id pgtype.UUID) (int64, error)
}

var errUnexpectedCall = errors.New("unexpected repository call")

func (m *mockQuerier) CreateUser(ctx context.Context, arg repository.CreateUserParams) (repository.User, error) {
	if m.CreateUserFunc == nil {
		return repository.User{}, errUnexpectedCall
	}
	return m.CreateUserFunc(ctx, arg)
}

func (m *mockQuerier) GetUserByID(ctx context.Context, id pgtype.UUID) (repository.User, error) {
	if m.GetUserByIDFunc == nil {
		return repository.User{}, errUnexpectedCall
	}
	return m.GetUserByIDFunc(ctx, id)
}

func (m *mockQuerier) GetUserByUsername(ctx context.Context, username string) (repository.User, error) {
	if m.GetUserByUsernameFunc == nil {
		return repository.User{}, errUnexpectedCall
	}
	return m.GetUserByUsernameFunc(ctx, username)
}

func (m *mockQuerier) ListUsers(ctx context.Context, arg repository.ListUsersParams) ([]repository.User, error) {
	if m.ListUsersFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.ListUsersFunc(ctx, arg)
}

func (m *mockQuerier) UpdateUser(ctx context.Context, arg repository.UpdateUserParams) (repository.User, error) {
	if m.UpdateUserFunc == nil {
		return repository.User{}, errUnexpectedCall
	}
	return m.UpdateUserFunc(ctx, arg)
}

func (m *mockQuerier) DeactivateUser(ctx context.Context, id pgtype.UUID) (int64, error) {
	if m.DeactivateUserFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.DeactivateUserFunc(ctx, id)
}

func (m *mockQuerier) CountUsers(ctx context.Context) (int64, error) {
	if m.CountUsersFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.CountUsersFunc(ctx)
}

func (m *mockQuerier) CountUsersSince(ctx context.Context, since pgtype.Timestamptz) (int64, error) {
	if m.CountUsersSinceFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.CountUsersSinceFunc(ctx, since)
}

func (m *mockQuerier) CreateProduct(ctx context.Context, arg repository.CreateProductParams) (repository.Product, error) {
	if m.CreateProductFunc == nil {
		return repository.Product{}, errUnexpectedCall
	}
	return m.CreateProductFunc(ctx, arg)
}

func (m *mockQuerier) GetProductByID(ctx context.Context, id pgtype.UUID) (repository.Product, error) {
	if m.GetProductByIDFunc == nil {
		return repository.Product{}, errUnexpectedCall
	}
	return m.GetProductByIDFunc(ctx, id)
}

func (m *mockQuerier) ListProducts(ctx context.Context, arg repository.ListProductsParams) ([]repository.Product, error) {
	if m.ListProductsFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.ListProductsFunc(ctx, arg)
}

func (m *mockQuerier) UpdateProduct(ctx context.Context, arg repository.UpdateProductParams) (repository.Product, error) {
	if m.UpdateProductFunc == nil {
		return repository.Product{}, errUnexpectedCall
	}
	return m.UpdateProductFunc(ctx, arg)
}

func (m *mockQuerier) DeactivateProduct(ctx context.Context, id pgtype.UUID) (int64, error) {
	if m.DeactivateProductFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.DeactivateProductFunc(ctx, id)
}

func (m *mockQuerier) CountProducts(ctx context.Context) (int64, error) {
	if m.CountProductsFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.CountProductsFunc(ctx)
}

func (m *mockQuerier) CountLowStockProducts(ctx context.Context, below int32) (int64, error) {
	if m.CountLowStockProductsFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.CountLowStockProductsFunc(ctx, below)
}

func (m *mockQuerier) InsertCartItem(ctx context.Context, arg repository.InsertCartItemParams) (repository.CartItem, error) {
	if m.InsertCartItemFunc == nil {
		return repository.CartItem{}, errUnexpectedCall
	}
	return m.InsertCartItemFunc(ctx, arg)
}

func (m *mockQuerier) AddCartItemQuantity(ctx context.Context, arg repository.AddCartItemQuantityParams) (repository.CartItem, error) {
	if m.AddCartItemQuantityFunc == nil {
		return repository.CartItem{}, errUnexpectedCall
	}
	return m.AddCartItemQuantityFunc(ctx, arg)
}

func (m *mockQuerier) FindCartItem(ctx context.Context, arg repository.FindCartItemParams) (repository.CartItem, error) {
	if m.FindCartItemFunc == nil {
		return repository.CartItem{}, errUnexpectedCall
	}
	return m.FindCartItemFunc(ctx, arg)
}

func (m *mockQuerier) GetCartItem(ctx context.Context, id pgtype.UUID) (repository.CartItem, error) {
	if m.GetCartItemFunc == nil {
		return repository.CartItem{}, errUnexpectedCall
	}
	return m.GetCartItemFunc(ctx, id)
}

func (m *mockQuerier) GetCartItemsByUser(ctx context.Context, userID pgtype.UUID) ([]repository.CartItem, error) {
	if m.GetCartItemsByUserFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.GetCartItemsByUserFunc(ctx, userID)
}

func (m *mockQuerier) ListCartItems(ctx context.Context, userID pgtype.UUID) ([]repository.ListCartItemsRow, error) {
	if m.ListCartItemsFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.ListCartItemsFunc(ctx, userID)
}

func (m *mockQuerier) UpdateCartItemQuantity(ctx context.Context, arg repository.UpdateCartItemQuantityParams) (repository.CartItem, error) {
	if m.UpdateCartItemQuantityFunc == nil {
		return repository.CartItem{}, errUnexpectedCall
	}
	return m.UpdateCartItemQuantityFunc(ctx, arg)
}

func (m *mockQuerier) DeleteCartItem(ctx context.Context, id pgtype.UUID) (int64, error) {
	if m.DeleteCartItemFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.DeleteCartItemFunc(ctx, id)
}

func (m *mockQuerier) ClearCart(ctx context.Context, userID pgtype.UUID) (int64, error) {
	if m.ClearCartFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.ClearCartFunc(ctx, userID)
}

func (m *mockQuerier) CreateOrder(ctx context.Context, arg repository.CreateOrderParams) (repository.Order, error) {
	if m.CreateOrderFunc == nil {
		return repository.Order{}, errUnexpectedCall
	}
	return m.CreateOrderFunc(ctx, arg)
}

func (m *mockQuerier) CreateOrderItem(ctx context.Context, arg repository.CreateOrderItemParams) (repository.OrderItem, error) {
	if m.CreateOrderItemFunc == nil {
		return repository.OrderItem{}, errUnexpectedCall
	}
	return m.CreateOrderItemFunc(ctx, arg)
}

func (m *mockQuerier) GetOrderByID(ctx context.Context, id pgtype.UUID) (repository.Order, error) {
	if m.GetOrderByIDFunc == nil {
		return repository.Order{}, errUnexpectedCall
	}
	return m.GetOrderByIDFunc(ctx, id)
}

func (m *mockQuerier) GetOrderItems(ctx context.Context, orderID pgtype.UUID) ([]repository.OrderItem, error) {
	if m.GetOrderItemsFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.GetOrderItemsFunc(ctx, orderID)
}

func (m *mockQuerier) ListOrdersByUser(ctx context.Context, userID pgtype.UUID) ([]repository.Order, error) {
	if m.ListOrdersByUserFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.ListOrdersByUserFunc(ctx, userID)
}

func (m *mockQuerier) ListOrders(ctx context.Context, arg repository.ListOrdersParams) ([]repository.Order, error) {
	if m.ListOrdersFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.ListOrdersFunc(ctx, arg)
}

func (m *mockQuerier) UpdateOrderStatus(ctx context.Context, arg repository.UpdateOrderStatusParams) (repository.Order, error) {
	if m.UpdateOrderStatusFunc == nil {
		return repository.Order{}, errUnexpectedCall
	}
	return m.UpdateOrderStatusFunc(ctx, arg)
}

func (m *mockQuerier) CountOrders(ctx context.Context) (int64, error) {
	if m.CountOrdersFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.CountOrdersFunc(ctx)
}

func (m *mockQuerier) CountOrdersByStatus(ctx context.Context, status string) (int64, error) {
	if m.CountOrdersByStatusFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.CountOrdersByStatusFunc(ctx, status)
}

func (m *mockQuerier) CountOrdersSince(ctx context.Context, since pgtype.Timestamptz) (int64, error) {
	if m.CountOrdersSinceFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.CountOrdersSinceFunc(ctx, since)
}

func (m *mockQuerier) SumOrderRevenue(ctx context.Context) (int64, error) {
	if m.SumOrderRevenueFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.SumOrderRevenueFunc(ctx)
}

func (m *mockQuerier) SumOrderRevenueSince(ctx context.Context, since pgtype.Timestamptz) (int64, error) {
	if m.SumOrderRevenueSinceFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.SumOrderRevenueSinceFunc(ctx, since)
}

func (m *mockQuerier) TopProductsSince(ctx context.Context, arg repository.TopProductsSinceParams) ([]repository.TopProductsSinceRow, error) {
	if m.TopProductsSinceFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.TopProductsSinceFunc(ctx, arg)
}

func (m *mockQuerier) CreateAddress(ctx context.Context, arg repository.CreateAddressParams) (repository.Address, error) {
	if m.CreateAddressFunc == nil {
		return repository.Address{}, errUnexpectedCall
	}
	return m.CreateAddressFunc(ctx, arg)
}

func (m *mockQuerier) GetAddress(ctx context.Context, arg repository.GetAddressParams) (repository.Address, error) {
	if m.GetAddressFunc == nil {
		return repository.Address{}, errUnexpectedCall
	}
	return m.GetAddressFunc(ctx, arg)
}

func (m *mockQuerier) ListAddressesByUser(ctx context.Context, userID pgtype.UUID) ([]repository.Address, error) {
	if m.ListAddressesByUserFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.ListAddressesByUserFunc(ctx, userID)
}

func (m *mockQuerier) UpdateAddress(ctx context.Context, arg repository.UpdateAddressParams) (repository.Address, error) {
	if m.UpdateAddressFunc == nil {
		return repository.Address{}, errUnexpectedCall
	}
	return m.UpdateAddressFunc(ctx, arg)
}

func (m *mockQuerier) DeleteAddress(ctx context.Context, arg repository.DeleteAddressParams) (int64, error) {
	if m.DeleteAddressFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.DeleteAddressFunc(ctx, arg)
}

func (m *mockQuerier) UnsetDefaultAddresses(ctx context.Context, userID pgtype.UUID) error {
	if m.UnsetDefaultAddressesFunc == nil {
		return errUnexpectedCall
	}
	return m.UnsetDefaultAddressesFunc(ctx, userID)
}

func (m *mockQuerier) SetDefaultAddress(ctx context.Context, arg repository.SetDefaultAddressParams) (int64, error) {
	if m.SetDefaultAddressFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.SetDefaultAddressFunc(ctx, arg)
}

func (m *mockQuerier) CreateReview(ctx context.Context, arg repository.CreateReviewParams) (repository.Review, error) {
	if m.CreateReviewFunc == nil {
		return repository.Review{}, errUnexpectedCall
	}
	return m.CreateReviewFunc(ctx, arg)
}

func (m *mockQuerier) FindReviewByUserAndProduct(ctx context.Context, arg repository.FindReviewByUserAndProductParams) (repository.Review, error) {
	if m.FindReviewByUserAndProductFunc == nil {
		return repository.Review{}, errUnexpectedCall
	}
	return m.FindReviewByUserAndProductFunc(ctx, arg)
}

func (m *mockQuerier) ListApprovedReviews(ctx context.Context, arg repository.ListApprovedReviewsParams) ([]repository.ListApprovedReviewsRow, error) {
	if m.ListApprovedReviewsFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.ListApprovedReviewsFunc(ctx, arg)
}

func (m *mockQuerier) ListReviewsByUser(ctx context.Context, arg repository.ListReviewsByUserParams) ([]repository.ListReviewsByUserRow, error) {
	if m.ListReviewsByUserFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.ListReviewsByUserFunc(ctx, arg)
}

func (m *mockQuerier) GetReviewSummary(ctx context.Context, productID pgtype.UUID) (repository.GetReviewSummaryRow, error) {
	if m.GetReviewSummaryFunc == nil {
		return repository.GetReviewSummaryRow{}, errUnexpectedCall
	}
	return m.GetReviewSummaryFunc(ctx, productID)
}

func (m *mockQuerier) GetRatingDistribution(ctx context.Context, productID pgtype.UUID) ([]repository.GetRatingDistributionRow, error) {
	if m.GetRatingDistributionFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.GetRatingDistributionFunc(ctx, productID)
}

func (m *mockQuerier) SetReviewApproval(ctx context.Context, arg repository.SetReviewApprovalParams) (int64, error) {
	if m.SetReviewApprovalFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.SetReviewApprovalFunc(ctx, arg)
}

func (m *mockQuerier) DeleteReview(ctx context.Context, id pgtype.UUID) (int64, error) {
	if m.DeleteReviewFunc == nil {
		return 0, errUnexpectedCall
	}
	return m.DeleteReviewFunc(ctx, id)
}

var _ repository.Querier = (*mockQuerier)(nil)

// mockStore satisfies repository.TxStarter by running the callback against
// the same mock, with no real transaction underneath.
type mockStore struct {
	q        *mockQuerier
	beginErr error
}

func (m *mockStore) ExecTx(ctx context.Context, fn func(repository.Querier) error) error {
	if m.beginErr != nil {
		return m.beginErr
	}
	return fn(m.q)
}

var _ repository.TxStarter = (*mockStore)(nil)

func mustUUID(s string) pgtype.UUID {
	var id pgtype.UUID
	if err := id.Scan(s); err != nil {
		panic(err)
	}
	return id
}
