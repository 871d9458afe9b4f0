package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/andersonfbarbosa/barber-booking-api/internal/audit"
	"github.com/andersonfbarbosa/barber-booking-api/internal/cache"
	"github.com/andersonfbarbosa/barber-booking-api/internal/config"
	"github.com/andersonfbarbosa/barber-booking-api/internal/handlers"
	infraRepo "github.com/andersonfbarbosa/barber-booking-api/internal/infra/repository"
	"github.com/andersonfbarbosa/barber-booking-api/internal/middleware"
	ucBooking "github.com/andersonfbarbosa/barber-booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	availabilityCache := cache.NewAvailability(cfg.RedisAddr)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	listUserBookingsUC := ucBooking.NewListUserBookings(bookingRepo)
	listAdminBookingsUC := ucBooking.NewListAdminBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(
		bookingRepo,
		availabilityUC,
		availabilityCache,
	)

	bookingHandler := handlers.NewBookingHandler(
		bookingRepo,
		createBookingUC,
		deleteBookingUC,
		listUserBookingsUC,
		availabilityCache,
	)

	adminHandler := handlers.NewAdminHandler(
		bookingRepo,
		listAdminBookingsUC,
		auditDispatcher,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICA
		// ------------------------------
		api.GET("/barbershop", publicHandler.GetBarbershop)
		api.GET("/services", publicHandler.ListServices)
		api.GET("/availability", publicHandler.Availability)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.POST("/auth/reset-password", authHandler.ResetPassword)

		// ------------------------------
		// PRIVADA (cookie ou bearer)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/me", meHandler.GetMe)

			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.ListMine)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)

			// ------------------------------
			// ADMIN
			// ------------------------------
			adm := secured.Group("/admin")
			adm.Use(middleware.AdminOnly())
			{
				adm.GET("/bookings", adminHandler.ListBookings)
				adm.PUT("/barbershop/hours", adminHandler.UpdateHours)
				adm.DELETE("/barbershop/hours", adminHandler.ClearHours)
			}
		}
	}
}
