package model

import "time"

// Shop customer or admin. Identity lives at Auth0; Auth0Sub links the
// verified subject to this row.
type User struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Auth0Sub  string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"-"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName string     `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName  string     `gorm:"type:varchar(255);not null" json:"last_name"`
	Company   string     `gorm:"type:varchar(255)" json:"company"`
	IsAdmin   bool       `gorm:"not null;default:false" json:"is_admin"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
