package repository

import "context"

// Repositories bound to one running transaction.
type TxRepos interface {
	Users() UserRepository
	Products() ProductRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Inventory() InventoryRepository
}

// Hides begin/commit/rollback from the usecases. fn returning an error rolls
// the whole transaction back, including every stock decrement made inside it.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
