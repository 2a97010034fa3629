package class

import (
	"errors"
	"net/http"
	"strconv"

	"tessalp/internal/api"
	"tessalp/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      List classes
// @Tags         classes
// @Produce      json
// @Success      200 {array} class.Class
// @Router       /api/classes [get]
func (h *Handler) List(c *gin.Context) {
	classes, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list classes", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron obtener las clases"})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// @Summary      Create a class
// @Tags         classes
// @Router       /api/classes [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		logger.Error("failed to create class", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo crear la clase"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary      Update a class
// @Tags         classes
// @Router       /api/classes/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Identificador inválido"})
		return
	}

	var req UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrClassNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Clase no encontrada"})
			return
		}
		logger.Error("failed to update class", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo actualizar la clase"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary      Delete a class
// @Tags         classes
// @Router       /api/classes/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Identificador inválido"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrClassNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Clase no encontrada"})
			return
		}
		logger.Error("failed to delete class", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo eliminar la clase"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Clase eliminada"})
}
