package service

import (
	"github.com/dukerupert/vanir/internal/domain"
)

// Not-found errors - use domain.ENOTFOUND
var (
	ErrProductNotFound  = domain.Errorf(domain.ENOTFOUND, "", "Product not found")
	ErrCartItemNotFound = domain.Errorf(domain.ENOTFOUND, "", "Cart item not found")
	ErrOrderNotFound    = domain.Errorf(domain.ENOTFOUND, "", "Order not found")
	ErrUserNotFound     = domain.Errorf(domain.ENOTFOUND, "", "User not found")
	ErrAddressNotFound  = domain.Errorf(domain.ENOTFOUND, "", "Address not found")
	ErrReviewNotFound   = domain.Errorf(domain.ENOTFOUND, "", "Review not found")
)

// Validation errors - use domain.EINVALID
var (
	ErrInvalidQuantity  = domain.Errorf(domain.EINVALID, "", "Quantity must be greater than 0")
	ErrQuantityTooLarge = domain.Errorf(domain.EINVALID, "", "Quantity exceeds the per-item limit")
	ErrCartTooLarge     = domain.Errorf(domain.EINVALID, "", "Cart total exceeds the supported maximum")
	ErrEmptyCart        = domain.Errorf(domain.EINVALID, "", "Cart is empty")
	ErrInvalidRating    = domain.Errorf(domain.EINVALID, "", "Rating must be between 1 and 5")
	ErrInvalidRole      = domain.Errorf(domain.EINVALID, "", "Invalid user role")
	ErrInvalidStatus    = domain.Errorf(domain.EINVALID, "", "Invalid order status")
)

// Conflict errors - use domain.ECONFLICT
var (
	ErrUsernameTaken      = domain.Errorf(domain.ECONFLICT, "", "Username or email already registered")
	ErrDuplicateReview    = domain.Errorf(domain.ECONFLICT, "", "You have already reviewed this product")
	ErrInvalidTransition  = domain.Errorf(domain.ECONFLICT, "", "Order status transition not allowed")
	ErrProductUnavailable = domain.Errorf(domain.ECONFLICT, "", "Product is no longer available")
	ErrSelfDeactivation   = domain.Errorf(domain.EFORBIDDEN, "", "You cannot deactivate your own account")
	ErrInvalidCredentials = domain.Errorf(domain.EUNAUTHORIZED, "", "Invalid username or password")
	ErrAccountDeactivated = domain.Errorf(domain.EUNAUTHORIZED, "", "Account is deactivated")
)

// Checkout errors
var (
	ErrCheckoutFailed = domain.Errorf(domain.EINTERNAL, "", "Checkout could not be completed")
)
