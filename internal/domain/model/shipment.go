package model

import "time"

// Shipment details of a finalized order. Schema only.
type Shipment struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID        int64     `gorm:"not null;uniqueIndex" json:"order_id"`
	TrackingNumber string    `gorm:"type:varchar(255)" json:"tracking_number"`
	Carrier        string    `gorm:"type:varchar(100)" json:"carrier"`
	ShippedDate    time.Time `gorm:"type:date" json:"shipped_date"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
