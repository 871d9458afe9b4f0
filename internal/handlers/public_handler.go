package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andersonfbarbosa/barber-booking-api/internal/cache"
	domain "github.com/andersonfbarbosa/barber-booking-api/internal/domain/booking"
	"github.com/andersonfbarbosa/barber-booking-api/internal/httperr"
	"github.com/andersonfbarbosa/barber-booking-api/internal/timezone"
	ucBooking "github.com/andersonfbarbosa/barber-booking-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	repo           domain.Repository
	availabilityUC *ucBooking.GetAvailability
	cache          *cache.Availability
}

func NewPublicHandler(
	repo domain.Repository,
	availabilityUC *ucBooking.GetAvailability,
	availabilityCache *cache.Availability,
) *PublicHandler {
	return &PublicHandler{
		repo:           repo,
		availabilityUC: availabilityUC,
		cache:          availabilityCache,
	}
}

////////////////////////////////////////////////////////
// BARBERSHOP
////////////////////////////////////////////////////////

func (h *PublicHandler) GetBarbershop(c *gin.Context) {
	shop, err := h.repo.GetBarbershop(c.Request.Context())
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()

	shop, err := h.repo.GetBarbershop(ctx)
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	services, err := h.repo.ListServices(ctx, shop.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barbershop": shop,
		"services":   services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	ctx := c.Request.Context()

	shop, err := h.repo.GetBarbershop(ctx)
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	if slots, ok := h.cache.Get(ctx, shop.ID, date); ok {
		c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
		return
	}

	slots, err := h.availabilityUC.Execute(ctx, shop.ID, date, timezone.Now())
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}

	h.cache.Set(ctx, shop.ID, date, out)

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": out,
	})
}
