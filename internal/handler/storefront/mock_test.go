package storefront

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/dukerupert/vanir/internal/domain"
	"github.com/dukerupert/vanir/internal/middleware"
	"github.com/dukerupert/vanir/internal/service"
	"github.com/dukerupert/vanir/internal/telemetry"
	"github.com/jackc/pgx/v5/pgtype"
)

var errUnexpectedCall = errors.New("unexpected service call")

func mustUUID(t *testing.T, s string) pgtype.UUID {
	t.Helper()
	var id pgtype.UUID
	if err := id.Scan(s); err != nil {
		t.Fatalf("bad uuid %q: %v", s, err)
	}
	return id
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Registered once: promauto panics on duplicate registration.
var testMetrics = telemetry.NewBusinessMetrics("storefront_test")

func withIdentity(r *http.Request, userID pgtype.UUID) *http.Request {
	identity := &middleware.Identity{UserID: userID, Role: domain.RoleUser}
	ctx := context.WithValue(r.Context(), middleware.IdentityContextKey, identity)
	return r.WithContext(ctx)
}

type mockCartService struct {
	addItem            func(ctx context.Context, userID, productID pgtype.UUID, quantity int32) (*service.CartSummary, error)
	updateItemQuantity func(ctx context.Context, userID, itemID pgtype.UUID, quantity int32) (*service.CartSummary, error)
	removeItem         func(ctx context.Context, userID, itemID pgtype.UUID) (*service.CartSummary, error)
	getCartSummary     func(ctx context.Context, userID pgtype.UUID) (*service.CartSummary, error)
	clearCart          func(ctx context.Context, userID pgtype.UUID) error
	deduplicate        func(ctx context.Context, userID pgtype.UUID) (int, error)
}

var _ service.CartService = (*mockCartService)(nil)

func (m *mockCartService) AddItem(ctx context.Context, userID, productID pgtype.UUID, quantity int32) (*service.CartSummary, error) {
	if m.addItem == nil {
		return nil, errUnexpectedCall
	}
	return m.addItem(ctx, userID, productID, quantity)
}

func (m *mockCartService) UpdateItemQuantity(ctx context.Context, userID, itemID pgtype.UUID, quantity int32) (*service.CartSummary, error) {
	if m.updateItemQuantity == nil {
		return nil, errUnexpectedCall
	}
	return m.updateItemQuantity(ctx, userID, itemID, quantity)
}

func (m *mockCartService) RemoveItem(ctx context.Context, userID, itemID pgtype.UUID) (*service.CartSummary, error) {
	if m.removeItem == nil {
		return nil, errUnexpectedCall
	}
	return m.removeItem(ctx, userID, itemID)
}

func (m *mockCartService) GetCartSummary(ctx context.Context, userID pgtype.UUID) (*service.CartSummary, error) {
	if m.getCartSummary == nil {
		return nil, errUnexpectedCall
	}
	return m.getCartSummary(ctx, userID)
}

func (m *mockCartService) ClearCart(ctx context.Context, userID pgtype.UUID) error {
	if m.clearCart == nil {
		return errUnexpectedCall
	}
	return m.clearCart(ctx, userID)
}

func (m *mockCartService) Deduplicate(ctx context.Context, userID pgtype.UUID) (int, error) {
	if m.deduplicate == nil {
		return 0, errUnexpectedCall
	}
	return m.deduplicate(ctx, userID)
}

type mockCheckoutService struct {
	checkout func(ctx context.Context, userID pgtype.UUID, shippingAddress string) (*service.OrderDetail, error)
}

var _ service.CheckoutService = (*mockCheckoutService)(nil)

func (m *mockCheckoutService) Checkout(ctx context.Context, userID pgtype.UUID, shippingAddress string) (*service.OrderDetail, error) {
	if m.checkout == nil {
		return nil, errUnexpectedCall
	}
	return m.checkout(ctx, userID, shippingAddress)
}

type mockUserService struct {
	register       func(ctx context.Context, params service.RegisterParams) (*service.User, error)
	login          func(ctx context.Context, username, password string) (string, *service.User, error)
	getUser        func(ctx context.Context, userID pgtype.UUID) (*service.User, error)
	updateProfile  func(ctx context.Context, userID pgtype.UUID, params service.ProfileParams) (*service.User, error)
	changePassword func(ctx context.Context, userID pgtype.UUID, current, next string) error
	listUsers      func(ctx context.Context, filter service.UserFilter) ([]service.User, error)
	setRole        func(ctx context.Context, userID pgtype.UUID, role string) (*service.User, error)
	deactivate     func(ctx context.Context, actorID, userID pgtype.UUID) error
}

var _ service.UserService = (*mockUserService)(nil)

func (m *mockUserService) Register(ctx context.Context, params service.RegisterParams) (*service.User, error) {
	if m.register == nil {
		return nil, errUnexpectedCall
	}
	return m.register(ctx, params)
}

func (m *mockUserService) Login(ctx context.Context, username, password string) (string, *service.User, error) {
	if m.login == nil {
		return "", nil, errUnexpectedCall
	}
	return m.login(ctx, username, password)
}

func (m *mockUserService) GetUser(ctx context.Context, userID pgtype.UUID) (*service.User, error) {
	if m.getUser == nil {
		return nil, errUnexpectedCall
	}
	return m.getUser(ctx, userID)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID pgtype.UUID, params service.ProfileParams) (*service.User, error) {
	if m.updateProfile == nil {
		return nil, errUnexpectedCall
	}
	return m.updateProfile(ctx, userID, params)
}

func (m *mockUserService) ChangePassword(ctx context.Context, userID pgtype.UUID, current, next string) error {
	if m.changePassword == nil {
		return errUnexpectedCall
	}
	return m.changePassword(ctx, userID, current, next)
}

func (m *mockUserService) ListUsers(ctx context.Context, filter service.UserFilter) ([]service.User, error) {
	if m.listUsers == nil {
		return nil, errUnexpectedCall
	}
	return m.listUsers(ctx, filter)
}

func (m *mockUserService) SetRole(ctx context.Context, userID pgtype.UUID, role string) (*service.User, error) {
	if m.setRole == nil {
		return nil, errUnexpectedCall
	}
	return m.setRole(ctx, userID, role)
}

func (m *mockUserService) Deactivate(ctx context.Context, actorID, userID pgtype.UUID) error {
	if m.deactivate == nil {
		return errUnexpectedCall
	}
	return m.deactivate(ctx, actorID, userID)
}

type mockReviewService struct {
	createReview       func(ctx context.Context, userID, productID pgtype.UUID, params service.ReviewParams) (*service.Review, error)
	listProductReviews func(ctx context.Context, productID pgtype.UUID, limit, offset int32) ([]service.Review, error)
	listUserReviews    func(ctx context.Context, userID pgtype.UUID, limit, offset int32) ([]service.Review, error)
	getProductRating   func(ctx context.Context, productID pgtype.UUID) (*service.RatingSummary, error)
	setApproval        func(ctx context.Context, reviewID pgtype.UUID, approved bool) error
	deleteReview       func(ctx context.Context, reviewID pgtype.UUID) error
}

var _ service.ReviewService = (*mockReviewService)(nil)

func (m *mockReviewService) CreateReview(ctx context.Context, userID, productID pgtype.UUID, params service.ReviewParams) (*service.Review, error) {
	if m.createReview == nil {
		return nil, errUnexpectedCall
	}
	return m.createReview(ctx, userID, productID, params)
}

func (m *mockReviewService) ListProductReviews(ctx context.Context, productID pgtype.UUID, limit, offset int32) ([]service.Review, error) {
	if m.listProductReviews == nil {
		return nil, errUnexpectedCall
	}
	return m.listProductReviews(ctx, productID, limit, offset)
}

func (m *mockReviewService) ListUserReviews(ctx context.Context, userID pgtype.UUID, limit, offset int32) ([]service.Review, error) {
	if m.listUserReviews == nil {
		return nil, errUnexpectedCall
	}
	return m.listUserReviews(ctx, userID, limit, offset)
}

func (m *mockReviewService) GetProductRating(ctx context.Context, productID pgtype.UUID) (*service.RatingSummary, error) {
	if m.getProductRating == nil {
		return nil, errUnexpectedCall
	}
	return m.getProductRating(ctx, productID)
}

func (m *mockReviewService) SetApproval(ctx context.Context, reviewID pgtype.UUID, approved bool) error {
	if m.setApproval == nil {
		return errUnexpectedCall
	}
	return m.setApproval(ctx, reviewID, approved)
}

func (m *mockReviewService) DeleteReview(ctx context.Context, reviewID pgtype.UUID) error {
	if m.deleteReview == nil {
		return errUnexpectedCall
	}
	return m.deleteReview(ctx, reviewID)
}
