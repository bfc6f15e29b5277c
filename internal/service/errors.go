package service

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSignupFields   = errors.New("name, email and password required")
	ErrMissingLoginFields    = errors.New("email and password required")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrNoItems               = errors.New("no items in order")
	ErrMissingCheckoutFields = errors.New("shipping address and payment method required")
	ErrInvalidQuantity       = errors.New("quantity must be at least 1")
	ErrProductUnavailable    = errors.New("product unavailable or insufficient stock")
	ErrAccessDenied          = errors.New("access denied")
	ErrInvalidOrderStatus    = errors.New("invalid order status")
)

// InsufficientStockError reports which product lost the stock check and how
// many units were still available at that moment.
type InsufficientStockError struct {
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s. Available: %d", e.ProductName, e.Available)
}
