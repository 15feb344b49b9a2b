package repository

import (
	"context"
	"time"

	"github.com/MoBa75/webshop/internal/domain/model"
)

type OrderRepository interface {
	// Returns the user's IN_CART order, creating it when none exists.
	// Safe against concurrent first-adds for the same user.
	GetOrCreateOpen(ctx context.Context, userID int64) (model.Order, error)

	// IN_CART order only; ErrNotFound when the user has no open cart.
	FindOpenByUserID(ctx context.Context, userID int64) (model.Order, error)

	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListFinalizedByUserID(ctx context.Context, userID int64) ([]model.Order, error)

	// Flips IN_CART -> FINALIZED and stamps the order date. ErrNotFound when
	// the order does not exist or is already finalized, so the transition can
	// only ever fire once.
	Finalize(ctx context.Context, orderID int64, date time.Time) error
}
