package facility

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

// @Summary      List a gym's facilities and amenities
// @Tags         facilities
// @Produce      json
// @Success      200 {object} facility.ListResponse
// @Router       /api/gym/{gymId}/facilities [get]
func (h *Handler) List(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	result, err := h.service.ListForGym(c.Request.Context(), gymID)
	if err != nil {
		logger.Error("failed to list facilities", "error", err, "gymId", gymID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron obtener las instalaciones"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary      Public facilities for a gym, resolved by slug or id
// @Tags         facilities
// @Router       /api/gyms/{gymId}/facilities [get]
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

	result, err := h.service.ListForGym(c.Request.Context(), g.ID)
	if err != nil {
		logger.Error("failed to list facilities", "error", err, "gymId", g.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron obtener las instalaciones"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary      Create a facility
// @Tags         facilities
// @Router       /api/gym/{gymId}/facilities [post]
func (h *Handler) Create(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	var req CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), gymID, req)
	if err != nil {
		logger.Error("failed to create facility", "error", err, "gymId", gymID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo crear la instalación"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary      Update a facility
// @Tags         facilities
// @Router       /api/gym/{gymId}/facilities/{id} [put]
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

	var req UpdateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), gymID, id, req)
	if err != nil {
		if errors.Is(err, ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Instalación no encontrada"})
			return
		}
		logger.Error("failed to update facility", "error", err, "gymId", gymID, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo actualizar la instalación"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary      Delete a facility
// @Tags         facilities
// @Router       /api/gym/{gymId}/facilities/{id} [delete]
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
		if errors.Is(err, ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Instalación no encontrada"})
			return
		}
		logger.Error("failed to delete facility", "error", err, "gymId", gymID, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo eliminar la instalación"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Instalación eliminada"})
}

// @Summary      Replace a gym's amenity list
// @Tags         facilities
// @Router       /api/gym/{gymId}/amenities [put]
func (h *Handler) ReplaceAmenities(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	var req ReplaceAmenitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	amenities, err := h.service.ReplaceAmenities(c.Request.Context(), gymID, req)
	if err != nil {
		logger.Error("failed to replace amenities", "error", err, "gymId", gymID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron actualizar las amenidades"})
		return
	}
	c.JSON(http.StatusOK, amenities)
}
