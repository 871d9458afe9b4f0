package booking

import (
	"context"
	"time"

	"github.com/andersonfbarbosa/barber-booking-api/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetBarbershop(
		ctx context.Context,
	) (*models.Barbershop, error)

	UpdateBarbershopHours(
		ctx context.Context,
		barbershopID string,
		opening *string,
		closing *string,
	) error

	// -------- Services --------
	GetService(
		ctx context.Context,
		barbershopID string,
		serviceID string,
	) (*models.BarbershopService, error)

	ListServices(
		ctx context.Context,
		barbershopID string,
	) ([]models.BarbershopService, error)

	// -------- Availability --------
	ListBookingDates(
		ctx context.Context,
		barbershopID string,
		start time.Time,
		end time.Time,
	) ([]time.Time, error)

	// -------- Booking (create / conflict) --------
	HasBookingAt(
		ctx context.Context,
		barbershopID string,
		at time.Time,
	) (bool, error)

	// CreateBooking insere a reserva de forma atômica: a checagem de
	// conflito e o insert acontecem na mesma transação, apoiados pelo
	// índice único (barbearia, horário). Devolve slot_taken em conflito.
	CreateBooking(
		ctx context.Context,
		bk *models.Booking,
	) error

	// -------- Booking (read / delete) --------
	GetBookingByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	DeleteBooking(
		ctx context.Context,
		id string,
	) error

	ListUserBookings(
		ctx context.Context,
		userID string,
		upcoming bool,
		now time.Time,
	) ([]models.Booking, error)

	ListAllBookings(
		ctx context.Context,
	) ([]models.Booking, error)
}
