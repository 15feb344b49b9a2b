package usecase

import (
	"errors"
	"fmt"
)

// Validation failures surfaced before any mutation.
var (
	ErrInvalidQuantity  = errors.New("quantity must be greater than 0")
	ErrItemNotInCart    = errors.New("product not in cart")
	ErrNoCartToCheckout = errors.New("no cart to checkout")
)

// Product stock is exactly zero at validation time.
type OutOfStockError struct {
	ProductID   int64
	ProductName string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("product %q (id %d) is out of stock", e.ProductName, e.ProductID)
}

// Requested quantity exceeds the available (nonzero) stock.
type InsufficientStockError struct {
	ProductID   int64
	ProductName string
	Available   int64
	Requested   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product %q (id %d): available %d, requested %d",
		e.ProductName, e.ProductID, e.Available, e.Requested)
}

// HTTPError carries a status for failures that have no richer kind
// (conflicts, internal errors). The handler maps everything else by type.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
