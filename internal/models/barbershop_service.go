package models

import "time"

type BarbershopService struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	BarbershopID string     `gorm:"type:uuid;not null" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barbershop"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	ImageURL    string  `gorm:"size:255" json:"image_url"`
	Price       float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
