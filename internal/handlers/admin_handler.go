package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andersonfbarbosa/barber-booking-api/internal/audit"
	domain "github.com/andersonfbarbosa/barber-booking-api/internal/domain/booking"
	"github.com/andersonfbarbosa/barber-booking-api/internal/httperr"
	"github.com/andersonfbarbosa/barber-booking-api/internal/httpresp"
	"github.com/andersonfbarbosa/barber-booking-api/internal/middleware"
	ucBooking "github.com/andersonfbarbosa/barber-booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER (rotas exclusivas de admin)
// ======================================================

type AdminHandler struct {
	repo   domain.Repository
	listUC *ucBooking.ListAdminBookings
	audit  *audit.Dispatcher
}

func NewAdminHandler(
	repo domain.Repository,
	listUC *ucBooking.ListAdminBookings,
	auditDispatcher *audit.Dispatcher,
) *AdminHandler {
	return &AdminHandler{
		repo:   repo,
		listUC: listUC,
		audit:  auditDispatcher,
	}
}

// ======================================================
// BOOKINGS
// ======================================================

func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Ocorreu um erro inesperado ao buscar os agendamentos.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// HORÁRIO DE FUNCIONAMENTO (exibição)
// ======================================================

type UpdateHoursRequest struct {
	OpeningTime string `json:"opening_time" binding:"required"`
	ClosingTime string `json:"closing_time" binding:"required"`
}

func (h *AdminHandler) UpdateHours(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Horário de abertura e fechamento são obrigatórios.")
		return
	}

	ctx := c.Request.Context()

	shop, err := h.repo.GetBarbershop(ctx)
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	if err := h.repo.UpdateBarbershopHours(ctx, shop.ID, &req.OpeningTime, &req.ClosingTime); err != nil {
		httperr.Internal(c, "failed_to_update_hours", "Ocorreu um erro inesperado ao atualizar os horários.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionHoursUpdated,
		Entity:   "barbershop",
		EntityID: &shop.ID,
		Metadata: map[string]string{
			"opening_time": req.OpeningTime,
			"closing_time": req.ClosingTime,
		},
	})

	c.JSON(http.StatusOK, gin.H{"message": "Horários atualizados com sucesso."})
}

func (h *AdminHandler) ClearHours(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	ctx := c.Request.Context()

	shop, err := h.repo.GetBarbershop(ctx)
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	if err := h.repo.UpdateBarbershopHours(ctx, shop.ID, nil, nil); err != nil {
		httperr.Internal(c, "failed_to_clear_hours", "Ocorreu um erro inesperado ao limpar os horários.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionHoursCleared,
		Entity:   "barbershop",
		EntityID: &shop.ID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Horários removidos."})
}
