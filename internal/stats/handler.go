package stats

import (
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

// @Summary      Admin dashboard metrics for the resolved gym
// @Tags         stats
// @Produce      json
// @Success      200 {object} stats.Dashboard
// @Failure      401 {object} api.ErrorResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /api/admin/stats [get]
func (h *Handler) Dashboard(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "Servicio no disponible"})
		return
	}

	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	dashboard, err := h.service.Dashboard(c.Request.Context(), gymID)
	if err != nil {
		logger.Error("failed to compute dashboard stats", "error", err, "gymId", gymID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron calcular las estadísticas"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
