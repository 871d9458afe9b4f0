package httperr

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Códigos de negócio usados pelo núcleo de agendamento.
const (
	CodeMissingBookingFields = "missing_booking_fields"
	CodeSlotTaken            = "slot_taken"
	CodeBookingNotFound      = "booking_not_found"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsDuplicateKey reconhece a violação do índice único reportada pelo
// banco. É o caminho autoritativo de detecção de conflito quando duas
// requisições disputam o mesmo horário.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}
