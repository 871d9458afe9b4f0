package models

import "time"

type Barbershop struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Address     string `gorm:"size:255" json:"address"`
	Phones      string `gorm:"size:100" json:"phones"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:255" json:"image_url"`

	// Horário exibido na página pública. Apenas informativo:
	// a grade de slots não depende destes campos.
	OpeningTime *string `gorm:"size:5" json:"opening_time"`
	ClosingTime *string `gorm:"size:5" json:"closing_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
