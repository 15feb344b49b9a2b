package model

import "time"

// Invoice for a finalized order. Schema only; invoice generation is not part
// of the checkout flow yet.
type Invoice struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int64     `gorm:"not null;uniqueIndex" json:"order_id"`
	InvoiceDate time.Time `gorm:"type:date" json:"invoice_date"`
	TotalAmount int64     `gorm:"not null" json:"total_amount"`
	IsPaid      bool      `gorm:"not null;default:false" json:"is_paid"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// Dunning reminder for an unpaid invoice.
type Reminder struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceID    int64     `gorm:"not null;index" json:"invoice_id"`
	ReminderDate time.Time `gorm:"type:date" json:"reminder_date"`
	Status       string    `gorm:"type:varchar(50)" json:"status"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
