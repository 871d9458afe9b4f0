package dto

import "time"

type BookingBarbershopDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	ImageURL string `json:"image_url"`
	Phones   string `json:"phones"`
}

type BookingServiceDTO struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Price      float64              `json:"price"`
	Barbershop BookingBarbershopDTO `json:"barbershop"`
}

type UserBookingDTO struct {
	ID      string            `json:"id"`
	Date    time.Time         `json:"date"`
	Service BookingServiceDTO `json:"service"`
}

type AdminBookingDTO struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	UserName    string    `json:"user_name"`
	UserImage   string    `json:"user_image"`
	ServiceName string    `json:"service_name"`
}
