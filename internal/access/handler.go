package access

import (
	"errors"
	"net/http"
	"strconv"

	"tessalp/internal/api"
	"tessalp/internal/auth"
	"tessalp/internal/coach"
	"tessalp/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	coaches coach.Service
}

func NewHandler(service Service, coaches coach.Service) *Handler {
	return &Handler{
		service: service,
		coaches: coaches,
	}
}

// @Summary      List access requests for a member
// @Tags         access
// @Produce      json
// @Param        memberId query int true "Member id"
// @Success      200 {array} access.MemberView
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/member/access [get]
func (h *Handler) ListForMember(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Query("memberId"))
	if err != nil || memberID <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Parámetro memberId inválido"})
		return
	}

	requests, err := h.service.ListForMember(c.Request.Context(), memberID)
	if err != nil {
		logger.Error("failed to list access requests", "error", err, "memberId", memberID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron obtener las solicitudes"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// @Summary      Respond to an access request
// @Tags         access
// @Accept       json
// @Produce      json
// @Success      200 {object} access.RespondResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /api/member/access [post]
func (h *Handler) Respond(c *gin.Context) {
	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	result, err := h.service.Respond(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAction):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Acción inválida. Usa APPROVE o REJECT"})
		case errors.Is(err, ErrRequestNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Solicitud no encontrada"})
		case errors.Is(err, ErrAlreadyResolved):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "La solicitud ya fue respondida"})
		default:
			logger.Error("failed to respond to access request", "error", err, "requestId", req.RequestID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo responder la solicitud"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary      Request access to a member
// @Tags         access
// @Router       /api/coach/access [post]
func (h *Handler) CreateRequest(c *gin.Context) {
	accountID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	profile, err := h.coaches.GetByAccount(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, coach.ErrCoachNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Entrenador no encontrado"})
			return
		}
		logger.Error("failed to load coach profile", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo crear la solicitud"})
		return
	}

	created, err := h.service.CreateRequest(c.Request.Context(), profile.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMemberNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Miembro no encontrado"})
		case errors.Is(err, ErrDuplicateRequest):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Ya existe una solicitud activa para este miembro"})
		default:
			logger.Error("failed to create access request", "error", err, "memberId", req.MemberID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo crear la solicitud"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary      List requests made by the logged-in coach
// @Tags         access
// @Router       /api/coach/access [get]
func (h *Handler) ListForCoach(c *gin.Context) {
	accountID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	profile, err := h.coaches.GetByAccount(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, coach.ErrCoachNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Entrenador no encontrado"})
			return
		}
		logger.Error("failed to load coach profile", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron obtener las solicitudes"})
		return
	}

	requests, err := h.service.ListForCoach(c.Request.Context(), profile.ID)
	if err != nil {
		logger.Error("failed to list coach access requests", "error", err, "coachId", profile.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron obtener las solicitudes"})
		return
	}

	c.JSON(http.StatusOK, requests)
}
