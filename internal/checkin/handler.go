package checkin

import (
	"errors"
	"net/http"

	"tessalp/internal/api"
	"tessalp/internal/auth"
	"tessalp/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Record a member check-in
// @Tags         checkins
// @Accept       json
// @Produce      json
// @Success      201 {object} checkin.RecordResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /api/checkins [post]
func (h *Handler) Record(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	result, err := h.service.Record(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrCodeNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Código no reconocido"})
		case errors.Is(err, ErrMembershipInactive):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "La membresía no está activa"})
		case errors.Is(err, ErrMembershipExpired):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "La membresía ha expirado"})
		default:
			logger.Error("failed to record checkin", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo registrar la entrada"})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// @Summary      List a gym's check-ins for a day
// @Tags         checkins
// @Router       /api/gym/{gymId}/checkins [get]
func (h *Handler) ListForGym(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	entries, err := h.service.ListForGym(c.Request.Context(), gymID, c.Query("date"))
	if err != nil {
		if errors.Is(err, ErrBadDate) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Fecha inválida. Usa el formato AAAA-MM-DD"})
			return
		}
		logger.Error("failed to list checkins", "error", err, "gymId", gymID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron obtener las entradas"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
