package plan

import (
	"errors"
	"net/http"
	"strconv"

	"tessalp/internal/api"
	"tessalp/internal/auth"
	"tessalp/internal/gym"
	"tessalp/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	gyms    gym.Service
}

func NewHandler(service Service, gyms gym.Service) *Handler {
	return &Handler{
		service: service,
		gyms:    gyms,
	}
}

// @Summary      List a gym's membership plans
// @Tags         plans
// @Produce      json
// @Success      200 {array} plan.Plan
// @Router       /api/gym/{gymId}/membership-plans [get]
func (h *Handler) List(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	plans, err := h.service.ListForGym(c.Request.Context(), gymID)
	if err != nil {
		logger.Error("failed to list membership plans", "error", err, "gymId", gymID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron obtener los planes"})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// @Summary      Public membership plans for a gym, resolved by slug or id
// @Tags         plans
// @Router       /api/gyms/{gymId}/membership-plans [get]
func (h *Handler) PublicList(c *gin.Context) {
	g, err := h.gyms.Resolve(c.Request.Context(), c.Param("gymId"))
	if err != nil {
		if errors.Is(err, gym.ErrGymNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gimnasio no encontrado"})
			return
		}
		logger.Error("failed to resolve gym", "error", err, "segment", c.Param("gymId"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo resolver el gimnasio"})
		return
	}

	plans, err := h.service.ListForGym(c.Request.Context(), g.ID)
	if err != nil {
		logger.Error("failed to list membership plans", "error", err, "gymId", g.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron obtener los planes"})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// @Summary      Create a membership plan
// @Tags         plans
// @Router       /api/gym/{gymId}/membership-plans [post]
func (h *Handler) Create(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), gymID, req)
	if err != nil {
		logger.Error("failed to create membership plan", "error", err, "gymId", gymID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo crear el plan"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary      Update a membership plan
// @Tags         plans
// @Router       /api/gym/{gymId}/membership-plans/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Identificador inválido"})
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), gymID, id, req)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Plan no encontrado"})
			return
		}
		logger.Error("failed to update membership plan", "error", err, "gymId", gymID, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo actualizar el plan"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary      Delete a membership plan
// @Tags         plans
// @Router       /api/gym/{gymId}/membership-plans/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Identificador inválido"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), gymID, id); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Plan no encontrado"})
			return
		}
		logger.Error("failed to delete membership plan", "error", err, "gymId", gymID, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo eliminar el plan"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Plan eliminado"})
}
