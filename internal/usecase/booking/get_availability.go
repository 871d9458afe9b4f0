package booking

import (
	"context"
	"time"

	domain "github.com/andersonfbarbosa/barber-booking-api/internal/domain/booking"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute calcula os horários ainda ofertáveis de uma data: busca as
// reservas do dia na janela [meia-noite, última hora do dia] e filtra
// a grade fixa. "now" vem do chamador para manter o cálculo puro.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barbershopID string,
	date time.Time,
	now time.Time,
) ([]domain.Slot, error) {

	start, end := domain.DayWindow(date)

	booked, err := uc.repo.ListBookingDates(ctx, barbershopID, start, end)
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(date, booked, now), nil
}
