package booking

import (
	"context"

	"github.com/andersonfbarbosa/barber-booking-api/internal/audit"
	domain "github.com/andersonfbarbosa/barber-booking-api/internal/domain/booking"
	"github.com/andersonfbarbosa/barber-booking-api/internal/httperr"
	"github.com/andersonfbarbosa/barber-booking-api/internal/models"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute remove uma reserva. O dono apaga as próprias; admin apaga
// qualquer uma. Reserva de outro usuário responde booking_not_found,
// igual a uma inexistente.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	bookingID string,
	userID string,
	isAdmin bool,
) (*models.Booking, error) {

	bk, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}

	if !isAdmin && bk.UserID != userID {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}

	if err := uc.repo.DeleteBooking(ctx, bk.ID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionBookingDeleted,
		Entity:   "booking",
		EntityID: &bk.ID,
	})

	return bk, nil
}
