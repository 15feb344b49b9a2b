package model

import "time"

// Billing or shipping address owned by a user.
type Address struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64     `gorm:"not null;index" json:"user_id"`
	Street     string    `gorm:"type:varchar(255);not null" json:"street"`
	ZipCode    string    `gorm:"type:varchar(20);not null" json:"zip_code"`
	City       string    `gorm:"type:varchar(255);not null" json:"city"`
	Country    string    `gorm:"type:varchar(100);not null" json:"country"`
	IsBilling  bool      `gorm:"not null;default:false" json:"is_billing"`
	IsShipping bool      `gorm:"not null;default:false" json:"is_shipping"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
