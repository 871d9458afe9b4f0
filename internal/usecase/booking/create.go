package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andersonfbarbosa/barber-booking-api/internal/audit"
	domain "github.com/andersonfbarbosa/barber-booking-api/internal/domain/booking"
	"github.com/andersonfbarbosa/barber-booking-api/internal/httperr"
	"github.com/andersonfbarbosa/barber-booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID    string
	BarbershopID string
	UserID       string
	Date         time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute valida, pré-checa o conflito e insere a reserva. A pré-checagem
// sozinha não segura corrida entre requisições simultâneas: quem decide é
// o repositório, com o índice único (barbearia, horário). Nos dois casos
// o chamador recebe o mesmo slot_taken.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (string, error) {

	// --------------------------------------------------
	// 1. Campos obrigatórios, antes de tocar o banco
	// --------------------------------------------------
	if in.ServiceID == "" || in.BarbershopID == "" || in.UserID == "" || in.Date.IsZero() {
		return "", httperr.ErrBusiness(httperr.CodeMissingBookingFields)
	}

	// --------------------------------------------------
	// 2. O serviço precisa pertencer à barbearia
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return "", httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 3. Pré-checagem de horário ocupado
	// --------------------------------------------------
	taken, err := uc.repo.HasBookingAt(ctx, in.BarbershopID, in.Date)
	if err != nil {
		return "", err
	}
	if taken {
		uc.dispatchConflict(in)
		return "", httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	// --------------------------------------------------
	// 4. Insert atômico
	// --------------------------------------------------
	bk := &models.Booking{
		ID:           uuid.NewString(),
		ServiceID:    svc.ID,
		BarbershopID: in.BarbershopID,
		UserID:       in.UserID,
		Date:         in.Date,
	}

	if err := uc.repo.CreateBooking(ctx, bk); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotTaken) || httperr.IsDuplicateKey(err) {
			uc.dispatchConflict(in)
			return "", httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: &bk.ID,
	})

	return bk.ID, nil
}

func (uc *CreateBooking) dispatchConflict(in CreateBookingInput) {
	uc.audit.Dispatch(audit.Event{
		UserID: &in.UserID,
		Action: audit.ActionBookingConflict,
		Entity: "booking",
		Metadata: map[string]any{
			"service_id": in.ServiceID,
			"date":       in.Date,
		},
	})
}
