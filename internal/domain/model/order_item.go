package model

import "time"

// One line per product per order; adding the same product again merges into
// the existing line. UnitPrice is the product price copied at add time, so
// later price changes never touch an existing cart or a finalized order.
type OrderItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64     `gorm:"not null;index;uniqueIndex:ux_order_items_order_product" json:"order_id"`
	ProductID int64     `gorm:"not null;index;uniqueIndex:ux_order_items_order_product" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	UnitPrice int64     `gorm:"not null" json:"unit_price"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
