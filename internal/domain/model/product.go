package model

import "time"

// Price is stored in minor units (cents). Stock must never go below zero;
// the inventory repository only decrements through a conditional update.
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Unit        string    `gorm:"type:varchar(50);not null" json:"unit"`
	Price       int64     `gorm:"not null" json:"price"`
	Stock       int64     `gorm:"not null" json:"stock"`
	Description string    `gorm:"type:text;not null" json:"description"`
	ImagePath   string    `gorm:"type:varchar(255)" json:"image_path"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
