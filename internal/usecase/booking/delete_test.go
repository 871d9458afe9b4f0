package booking_test

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/andersonfbarbosa/barber-booking-api/internal/httperr"
	"github.com/andersonfbarbosa/barber-booking-api/internal/models"
	ucbooking "github.com/andersonfbarbosa/barber-booking-api/internal/usecase/booking"
)

func deleteMock(owned string, deleted *[]string) *repoMock {
	return &repoMock{
		getBookingFn: func(ctx context.Context, id string) (*models.Booking, error) {
			if id != "bk-1" {
				return nil, gorm.ErrRecordNotFound
			}
			return &models.Booking{ID: "bk-1", UserID: owned, BarbershopID: "shop-1", Date: slot15h}, nil
		},
		deleteBookingFn: func(ctx context.Context, id string) error {
			*deleted = append(*deleted, id)
			return nil
		},
	}
}

func TestDelete_Owner(t *testing.T) {
	var deleted []string
	uc := ucbooking.NewDeleteBooking(deleteMock("user-1", &deleted), nil)

	bk, err := uc.Execute(context.Background(), "bk-1", "user-1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bk.ID != "bk-1" {
		t.Fatalf("expected the deleted booking back, got %+v", bk)
	}
	if len(deleted) != 1 || deleted[0] != "bk-1" {
		t.Fatalf("expected bk-1 deleted, got %v", deleted)
	}
}

func TestDelete_OtherUserLooksLikeMissing(t *testing.T) {
	var deleted []string
	uc := ucbooking.NewDeleteBooking(deleteMock("user-1", &deleted), nil)

	_, err := uc.Execute(context.Background(), "bk-1", "user-2", false)
	if !httperr.IsBusiness(err, httperr.CodeBookingNotFound) {
		t.Fatalf("expected %s, got %v", httperr.CodeBookingNotFound, err)
	}
	if len(deleted) != 0 {
		t.Fatal("booking of another user must not be deleted")
	}
}

func TestDelete_AdminDeletesAny(t *testing.T) {
	var deleted []string
	uc := ucbooking.NewDeleteBooking(deleteMock("user-1", &deleted), nil)

	if _, err := uc.Execute(context.Background(), "bk-1", "admin-9", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deleted) != 1 {
		t.Fatal("admin delete should reach storage")
	}
}

func TestDelete_Missing(t *testing.T) {
	var deleted []string
	uc := ucbooking.NewDeleteBooking(deleteMock("user-1", &deleted), nil)

	_, err := uc.Execute(context.Background(), "bk-404", "user-1", false)
	if !httperr.IsBusiness(err, httperr.CodeBookingNotFound) {
		t.Fatalf("expected %s, got %v", httperr.CodeBookingNotFound, err)
	}
}
