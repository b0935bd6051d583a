package model

import "time"

// Customer — покупатель магазина (регистрация через signup-форму).
type Customer struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
