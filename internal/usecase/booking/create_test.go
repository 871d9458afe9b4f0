package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/andersonfbarbosa/barber-booking-api/internal/httperr"
	"github.com/andersonfbarbosa/barber-booking-api/internal/models"
	ucbooking "github.com/andersonfbarbosa/barber-booking-api/internal/usecase/booking"
)

var slot15h = time.Date(2024, 6, 15, 15, 0, 0, 0, time.UTC)

func validInput() ucbooking.CreateBookingInput {
	return ucbooking.CreateBookingInput{
		ServiceID:    "svc-1",
		BarbershopID: "shop-1",
		UserID:       "user-1",
		Date:         slot15h,
	}
}

func TestCreate_MissingFields(t *testing.T) {
	storageTouched := false
	m := &repoMock{
		getServiceFn: func(ctx context.Context, barbershopID, serviceID string) (*models.BarbershopService, error) {
			storageTouched = true
			return nil, errors.New("should not be called")
		},
	}
	uc := ucbooking.NewCreateBooking(m, nil)

	tests := []struct {
		name   string
		mutate func(*ucbooking.CreateBookingInput)
	}{
		{"sem serviço", func(in *ucbooking.CreateBookingInput) { in.ServiceID = "" }},
		{"sem barbearia", func(in *ucbooking.CreateBookingInput) { in.BarbershopID = "" }},
		{"sem usuário", func(in *ucbooking.CreateBookingInput) { in.UserID = "" }},
		{"sem horário", func(in *ucbooking.CreateBookingInput) { in.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, httperr.CodeMissingBookingFields) {
				t.Fatalf("expected %s, got %v", httperr.CodeMissingBookingFields, err)
			}
			if storageTouched {
				t.Fatal("validation must reject before any storage call")
			}
		})
	}
}

func TestCreate_ServiceNotFound(t *testing.T) {
	m := &repoMock{
		getServiceFn: func(ctx context.Context, barbershopID, serviceID string) (*models.BarbershopService, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := ucbooking.NewCreateBooking(m, nil)

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}

func TestCreate_PreCheckConflict(t *testing.T) {
	inserted := false
	m := &repoMock{
		hasBookingAtFn: func(ctx context.Context, barbershopID string, at time.Time) (bool, error) {
			return true, nil
		},
		createBookingFn: func(ctx context.Context, bk *models.Booking) error {
			inserted = true
			return nil
		},
	}
	uc := ucbooking.NewCreateBooking(m, nil)

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, httperr.CodeSlotTaken) {
		t.Fatalf("expected %s, got %v", httperr.CodeSlotTaken, err)
	}
	if inserted {
		t.Fatal("pre-check conflict must not reach the insert")
	}
}

func TestCreate_StorageConflictSurfacesAsSlotTaken(t *testing.T) {
	// A pré-checagem passa, mas outra transação venceu a corrida: o
	// banco devolve violação de chave única e o chamador deve receber
	// o mesmo slot_taken do caminho feliz do conflito.
	tests := []struct {
		name string
		err  error
	}{
		{"erro traduzido do gorm", gorm.ErrDuplicatedKey},
		{"erro cru do postgres", errors.New(`ERROR: duplicate key value violates unique constraint "idx_booking_shop_slot" (SQLSTATE 23505)`)},
		{"conflito detectado no repositório", httperr.ErrBusiness(httperr.CodeSlotTaken)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &repoMock{
				createBookingFn: func(ctx context.Context, bk *models.Booking) error {
					return tt.err
				},
			}
			uc := ucbooking.NewCreateBooking(m, nil)

			_, err := uc.Execute(context.Background(), validInput())
			if !httperr.IsBusiness(err, httperr.CodeSlotTaken) {
				t.Fatalf("expected %s, got %v", httperr.CodeSlotTaken, err)
			}
		})
	}
}

func TestCreate_StorageErrorIsNotMaskedAsConflict(t *testing.T) {
	storageErr := errors.New("connection refused")
	m := &repoMock{
		createBookingFn: func(ctx context.Context, bk *models.Booking) error {
			return storageErr
		},
	}
	uc := ucbooking.NewCreateBooking(m, nil)

	_, err := uc.Execute(context.Background(), validInput())
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected the storage error, got %v", err)
	}
	if httperr.IsBusiness(err, httperr.CodeSlotTaken) {
		t.Fatal("a generic storage failure must not look like a conflict")
	}
}

func TestCreate_Success(t *testing.T) {
	var created *models.Booking
	m := &repoMock{
		createBookingFn: func(ctx context.Context, bk *models.Booking) error {
			created = bk
			return nil
		},
	}
	uc := ucbooking.NewCreateBooking(m, nil)

	id, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected a booking id")
	}
	if created == nil {
		t.Fatal("expected the booking to be persisted")
	}
	if created.ID != id {
		t.Fatalf("returned id %s differs from persisted id %s", id, created.ID)
	}
	if created.ServiceID != "svc-1" || created.BarbershopID != "shop-1" || created.UserID != "user-1" {
		t.Fatalf("booking persisted with wrong references: %+v", created)
	}
	if !created.Date.Equal(slot15h) {
		t.Fatalf("expected date %s, got %s", slot15h, created.Date)
	}
}
