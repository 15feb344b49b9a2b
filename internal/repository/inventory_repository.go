package repository

import (
	"context"

	"github.com/MoBa75/webshop/internal/domain/model"
)

type InventoryRepository interface {
	// Decrements stock by qty only when stock >= qty, as one atomic
	// conditional update. Returns false when stock was not sufficient.
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)

	// Increments stock by qty (restock, release of a reservation).
	IncreaseStock(ctx context.Context, productID int64, qty int64) error

	// Absolute stock set by an admin.
	SetStock(ctx context.Context, productID int64, newStock int64) error

	CreateAdjustment(ctx context.Context, adj model.InventoryAdjustment) error
}
