package repository

import (
	"context"

	"github.com/MoBa75/webshop/internal/domain/model"
)

type OrderItemRepository interface {
	// Items in insertion order (id asc).
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	// Adds addQty to an existing line for the product, or inserts a new line
	// with the given price snapshot. One line per product per order.
	UpsertByOrderAndProduct(ctx context.Context, orderID int64, productID int64, addQty int64, unitPrice int64) error

	// Absolute quantity set. ErrNotFound when the product has no line.
	SetQuantity(ctx context.Context, orderID int64, productID int64, qty int64) error

	// ErrNotFound when the product has no line.
	DeleteByOrderAndProduct(ctx context.Context, orderID int64, productID int64) error
}
