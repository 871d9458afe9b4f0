package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andersonfbarbosa/barber-booking-api/internal/cache"
	domain "github.com/andersonfbarbosa/barber-booking-api/internal/domain/booking"
	"github.com/andersonfbarbosa/barber-booking-api/internal/httperr"
	"github.com/andersonfbarbosa/barber-booking-api/internal/httpresp"
	"github.com/andersonfbarbosa/barber-booking-api/internal/middleware"
	"github.com/andersonfbarbosa/barber-booking-api/internal/timezone"
	ucBooking "github.com/andersonfbarbosa/barber-booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	repo     domain.Repository
	createUC *ucBooking.CreateBooking
	deleteUC *ucBooking.DeleteBooking
	listUC   *ucBooking.ListUserBookings
	cache    *cache.Availability
}

func NewBookingHandler(
	repo domain.Repository,
	createUC *ucBooking.CreateBooking,
	deleteUC *ucBooking.DeleteBooking,
	listUC *ucBooking.ListUserBookings,
	availabilityCache *cache.Availability,
) *BookingHandler {
	return &BookingHandler{
		repo:     repo,
		createUC: createUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		cache:    availabilityCache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informações do agendamento incompletas.")
		return
	}

	at, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ctx := c.Request.Context()

	shop, err := h.repo.GetBarbershop(ctx)
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	bookingID, err := h.createUC.Execute(ctx, ucBooking.CreateBookingInput{
		ServiceID:    req.ServiceID,
		BarbershopID: shop.ID,
		UserID:       userID,
		Date:         at,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeSlotTaken):
			httperr.Conflict(c, httperr.CodeSlotTaken, "Este horário já está reservado. Por favor, escolha outro.")
		case httperr.IsBusiness(err, httperr.CodeMissingBookingFields):
			httperr.BadRequest(c, httperr.CodeMissingBookingFields, "Informações do agendamento incompletas.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Serviço inválido.")
		default:
			httperr.Internal(c, "failed_to_create_booking", "Ocorreu um erro inesperado ao criar seu agendamento. Por favor, tente novamente.")
		}
		return
	}

	// a disponibilidade cacheada do dia mudou
	h.cache.InvalidateDay(ctx, shop.ID, at)

	httpresp.Created(c, gin.H{"id": bookingID})
}

// ======================================================
// LIST (do usuário logado)
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	// ?status=concluded traz o histórico; o padrão são as futuras.
	upcoming := c.Query("status") != "concluded"

	bookings, err := h.listUC.Execute(c.Request.Context(), userID, upcoming, timezone.Now())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	isAdmin := c.MustGet(middleware.ContextIsAdmin).(bool)
	bookingID := c.Param("id")

	ctx := c.Request.Context()

	bk, err := h.deleteUC.Execute(ctx, bookingID, userID, isAdmin)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeBookingNotFound) {
			httperr.NotFound(c, httperr.CodeBookingNotFound, "Você não tem permissão para cancelar esta reserva ou ela não existe.")
			return
		}
		httperr.Internal(c, "failed_to_delete_booking", "Ocorreu um erro ao cancelar o agendamento.")
		return
	}

	h.cache.InvalidateDay(ctx, bk.BarbershopID, bk.Date)

	c.JSON(http.StatusOK, gin.H{"message": "Reserva cancelada com sucesso."})
}
