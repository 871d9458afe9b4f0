package db

import (
	"log"
	"time"

	"github.com/andersonfbarbosa/barber-booking-api/internal/config"
	"github.com/andersonfbarbosa/barber-booking-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	// AutoMigrate também cria o índice único (barbearia, horário) da
	// tabela de bookings, que sustenta a garantia de slot exclusivo.
	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.User{},
		&models.BarbershopService{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
