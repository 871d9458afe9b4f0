package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/andersonfbarbosa/barber-booking-api/internal/models"
)

// Ações registradas pelo fluxo de agendamento.
const (
	ActionBookingCreated  = "booking_created"
	ActionBookingConflict = "booking_conflict"
	ActionBookingDeleted  = "booking_deleted"
	ActionHoursUpdated    = "hours_updated"
	ActionHoursCleared    = "hours_cleared"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	userID *string,
	action string,
	entity string,
	entityID *string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}
