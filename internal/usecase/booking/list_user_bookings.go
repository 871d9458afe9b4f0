package booking

import (
	"context"
	"time"

	domain "github.com/andersonfbarbosa/barber-booking-api/internal/domain/booking"
	"github.com/andersonfbarbosa/barber-booking-api/internal/dto"
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(
	repo domain.Repository,
) *ListUserBookings {
	return &ListUserBookings{
		repo: repo,
	}
}

// Execute lista as reservas do usuário: upcoming=true traz as futuras em
// ordem crescente, upcoming=false traz o histórico em ordem decrescente.
func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID string,
	upcoming bool,
	now time.Time,
) ([]dto.UserBookingDTO, error) {

	bookings, err := uc.repo.ListUserBookings(ctx, userID, upcoming, now)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserBookingDTO, 0, len(bookings))
	for _, bk := range bookings {
		out = append(out, dto.UserBookingDTO{
			ID:   bk.ID,
			Date: bk.Date,
			Service: dto.BookingServiceDTO{
				ID:    bk.Service.ID,
				Name:  bk.Service.Name,
				Price: bk.Service.Price,
				Barbershop: dto.BookingBarbershopDTO{
					ID:       bk.Service.Barbershop.ID,
					Name:     bk.Service.Barbershop.Name,
					Address:  bk.Service.Barbershop.Address,
					ImageURL: bk.Service.Barbershop.ImageURL,
					Phones:   bk.Service.Barbershop.Phones,
				},
			},
		})
	}

	return out, nil
}
