package model

import "time"

type OrderStatus string

const (
	// Open cart. At most one per user, enforced by ux_orders_open_cart.
	OrderStatusInCart OrderStatus = "IN_CART"
	// Checked out. Terminal; an order never goes back to IN_CART.
	OrderStatusFinalized OrderStatus = "FINALIZED"
)

// The cart is an order with status IN_CART. Checkout flips it to FINALIZED
// exactly once and refreshes Date.
type Order struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64       `gorm:"not null;index;uniqueIndex:ux_orders_open_cart,where:status = 'IN_CART'" json:"user_id"`
	Status    OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Date      time.Time   `gorm:"not null" json:"date"`
	CreatedAt time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
