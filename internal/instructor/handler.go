package instructor

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

// @Summary      List instructors
// @Tags         instructors
// @Produce      json
// @Success      200 {array} instructor.View
// @Router       /api/instructors [get]
func (h *Handler) List(c *gin.Context) {
	instructors, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list instructors", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron obtener los instructores"})
		return
	}
	c.JSON(http.StatusOK, instructors)
}

// @Summary      Create an instructor
// @Tags         instructors
// @Router       /api/instructors [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		logger.Error("failed to create instructor", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo crear el instructor"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary      Update an instructor
// @Tags         instructors
// @Router       /api/instructors/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Identificador inválido"})
		return
	}

	var req UpdateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrInstructorNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Instructor no encontrado"})
			return
		}
		logger.Error("failed to update instructor", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo actualizar el instructor"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary      Delete an instructor
// @Tags         instructors
// @Router       /api/instructors/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Identificador inválido"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrInstructorNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Instructor no encontrado"})
			return
		}
		logger.Error("failed to delete instructor", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo eliminar el instructor"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Instructor eliminado"})
}
