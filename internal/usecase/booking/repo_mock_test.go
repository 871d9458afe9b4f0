package booking_test

import (
	"context"
	"time"

	"github.com/andersonfbarbosa/barber-booking-api/internal/models"
)

// repoMock implementa domain/booking.Repository com funções plugáveis,
// no estilo dos testes de serviço do projeto.
type repoMock struct {
	getBarbershopFn   func(ctx context.Context) (*models.Barbershop, error)
	updateHoursFn     func(ctx context.Context, id string, opening, closing *string) error
	getServiceFn      func(ctx context.Context, barbershopID, serviceID string) (*models.BarbershopService, error)
	listServicesFn    func(ctx context.Context, barbershopID string) ([]models.BarbershopService, error)
	listDatesFn       func(ctx context.Context, barbershopID string, start, end time.Time) ([]time.Time, error)
	hasBookingAtFn    func(ctx context.Context, barbershopID string, at time.Time) (bool, error)
	createBookingFn   func(ctx context.Context, bk *models.Booking) error
	getBookingFn      func(ctx context.Context, id string) (*models.Booking, error)
	deleteBookingFn   func(ctx context.Context, id string) error
	listUserBookingFn func(ctx context.Context, userID string, upcoming bool, now time.Time) ([]models.Booking, error)
	listAllBookingFn  func(ctx context.Context) ([]models.Booking, error)
}

func (m *repoMock) GetBarbershop(ctx context.Context) (*models.Barbershop, error) {
	if m.getBarbershopFn == nil {
		return &models.Barbershop{ID: "shop-1"}, nil
	}
	return m.getBarbershopFn(ctx)
}

func (m *repoMock) UpdateBarbershopHours(ctx context.Context, id string, opening, closing *string) error {
	if m.updateHoursFn == nil {
		return nil
	}
	return m.updateHoursFn(ctx, id, opening, closing)
}

func (m *repoMock) GetService(ctx context.Context, barbershopID, serviceID string) (*models.BarbershopService, error) {
	if m.getServiceFn == nil {
		return &models.BarbershopService{ID: serviceID, BarbershopID: barbershopID}, nil
	}
	return m.getServiceFn(ctx, barbershopID, serviceID)
}

func (m *repoMock) ListServices(ctx context.Context, barbershopID string) ([]models.BarbershopService, error) {
	if m.listServicesFn == nil {
		return nil, nil
	}
	return m.listServicesFn(ctx, barbershopID)
}

func (m *repoMock) ListBookingDates(ctx context.Context, barbershopID string, start, end time.Time) ([]time.Time, error) {
	if m.listDatesFn == nil {
		return nil, nil
	}
	return m.listDatesFn(ctx, barbershopID, start, end)
}

func (m *repoMock) HasBookingAt(ctx context.Context, barbershopID string, at time.Time) (bool, error) {
	if m.hasBookingAtFn == nil {
		return false, nil
	}
	return m.hasBookingAtFn(ctx, barbershopID, at)
}

func (m *repoMock) CreateBooking(ctx context.Context, bk *models.Booking) error {
	if m.createBookingFn == nil {
		return nil
	}
	return m.createBookingFn(ctx, bk)
}

func (m *repoMock) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	if m.getBookingFn == nil {
		return nil, nil
	}
	return m.getBookingFn(ctx, id)
}

func (m *repoMock) DeleteBooking(ctx context.Context, id string) error {
	if m.deleteBookingFn == nil {
		return nil
	}
	return m.deleteBookingFn(ctx, id)
}

func (m *repoMock) ListUserBookings(ctx context.Context, userID string, upcoming bool, now time.Time) ([]models.Booking, error) {
	if m.listUserBookingFn == nil {
		return nil, nil
	}
	return m.listUserBookingFn(ctx, userID, upcoming, now)
}

func (m *repoMock) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	if m.listAllBookingFn == nil {
		return nil, nil
	}
	return m.listAllBookingFn(ctx)
}
