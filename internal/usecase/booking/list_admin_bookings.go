package booking

import (
	"context"

	domain "github.com/andersonfbarbosa/barber-booking-api/internal/domain/booking"
	"github.com/andersonfbarbosa/barber-booking-api/internal/dto"
)

type ListAdminBookings struct {
	repo domain.Repository
}

func NewListAdminBookings(
	repo domain.Repository,
) *ListAdminBookings {
	return &ListAdminBookings{
		repo: repo,
	}
}

// Execute lista todas as reservas da casa, mais recentes primeiro.
// Restrito a admin na camada de rotas.
func (uc *ListAdminBookings) Execute(
	ctx context.Context,
) ([]dto.AdminBookingDTO, error) {

	bookings, err := uc.repo.ListAllBookings(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AdminBookingDTO, 0, len(bookings))
	for _, bk := range bookings {
		out = append(out, dto.AdminBookingDTO{
			ID:          bk.ID,
			Date:        bk.Date,
			UserName:    bk.User.Name,
			UserImage:   bk.User.Image,
			ServiceName: bk.Service.Name,
		})
	}

	return out, nil
}
