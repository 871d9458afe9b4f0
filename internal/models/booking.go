package models

import "time"

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ServiceID string            `gorm:"type:uuid;not null" json:"service_id"`
	Service   BarbershopService `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	UserID string `gorm:"type:uuid;not null" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	// BarbershopID é desnormalizado do serviço para sustentar o índice
	// único (barbearia, horário) — a garantia de unicidade do slot.
	BarbershopID string    `gorm:"type:uuid;not null;uniqueIndex:idx_booking_shop_slot" json:"barbershop_id"`
	Date         time.Time `gorm:"not null;uniqueIndex:idx_booking_shop_slot" json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
