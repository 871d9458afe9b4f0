package models

import "time"

type User struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name         string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Email        *string `gorm:"size:100;uniqueIndex" json:"email"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`
	Phone        string  `gorm:"size:20;not null" json:"phone"`
	Image        string  `gorm:"size:255" json:"image"`
	IsAdmin      bool    `gorm:"default:false" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
