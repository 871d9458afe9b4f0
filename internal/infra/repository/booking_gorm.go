package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/andersonfbarbosa/barber-booking-api/internal/domain/booking"
	"github.com/andersonfbarbosa/barber-booking-api/internal/httperr"
	"github.com/andersonfbarbosa/barber-booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *BookingGormRepository) GetBarbershop(
	ctx context.Context,
) (*models.Barbershop, error) {

	// A aplicação é single-tenant: vale a barbearia mais antiga.
	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *BookingGormRepository) UpdateBarbershopHours(
	ctx context.Context,
	barbershopID string,
	opening *string,
	closing *string,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Barbershop{}).
		Where("id = ?", barbershopID).
		Updates(map[string]any{
			"opening_time": opening,
			"closing_time": closing,
		}).Error
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	barbershopID string,
	serviceID string,
) (*models.BarbershopService, error) {

	var svc models.BarbershopService
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", serviceID, barbershopID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) ListServices(
	ctx context.Context,
	barbershopID string,
) ([]models.BarbershopService, error) {

	var services []models.BarbershopService
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingDates(
	ctx context.Context,
	barbershopID string,
	start time.Time,
	end time.Time,
) ([]time.Time, error) {

	var dates []time.Time
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"barbershop_id = ? AND date >= ? AND date <= ?",
			barbershopID, start, end,
		).
		Order("date ASC").
		Pluck("date", &dates).Error; err != nil {
		return nil, err
	}

	return dates, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) HasBookingAt(
	ctx context.Context,
	barbershopID string,
	at time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("barbershop_id = ? AND date = ?", barbershopID, at).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	bk *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Tranca as candidatas ao mesmo horário antes de inserir.
		var conflicts []models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barbershop_id = ? AND date = ?",
				bk.BarbershopID, bk.Date,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		// Se duas transações passarem da checagem ao mesmo tempo, o
		// índice único idx_booking_shop_slot derruba a segunda.
		return tx.Create(bk).Error
	})
}

// --------------------------------------------------
// Booking (read / delete)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var bk models.Booking
	if err := r.db.WithContext(ctx).
		First(&bk, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &bk, nil
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Booking{}, "id = ?", id).Error
}

func (r *BookingGormRepository) ListUserBookings(
	ctx context.Context,
	userID string,
	upcoming bool,
	now time.Time,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Service.Barbershop").
		Where("user_id = ?", userID)

	if upcoming {
		q = q.Where("date >= ?", now).Order("date ASC")
	} else {
		q = q.Where("date < ?", now).Order("date DESC")
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListAllBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Order("date DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
