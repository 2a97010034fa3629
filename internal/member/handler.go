package member

import (
	"errors"
	"net/http"
	"strconv"

	"tessalp/internal/api"
	"tessalp/internal/auth"
	"tessalp/internal/logger"
	"tessalp/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service    Service
	authSecret string
}

func NewHandler(service Service, authSecret string) *Handler {
	return &Handler{
		service:    service,
		authSecret: authSecret,
	}
}

// @Summary      Register a portal account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201 {object} member.SessionResponse
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /api/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	account, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "El correo ya está registrado"})
			return
		}
		logger.Error("failed to register account", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo crear la cuenta"})
		return
	}

	token, err := auth.GenerateUserToken(account.ID, h.authSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo crear la sesión"})
		return
	}
	auth.SetUserSessionCookie(c, token)

	c.JSON(http.StatusCreated, SessionResponse{User: *account})
}

// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200 {object} member.SessionResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	account, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Correo o contraseña incorrectos"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo iniciar sesión"})
		return
	}

	token, err := auth.GenerateUserToken(account.ID, h.authSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo crear la sesión"})
		return
	}
	auth.SetUserSessionCookie(c, token)

	c.JSON(http.StatusOK, SessionResponse{User: *account})
}

func (h *Handler) Logout(c *gin.Context) {
	auth.ClearUserSessionCookie(c)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Sesión cerrada"})
}

func (h *Handler) Me(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	account, err := h.service.GetAccount(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo obtener la cuenta"})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{User: *account})
}

// ListMembers serves the tenant roster for the admin dashboard.
func (h *Handler) ListMembers(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	members, err := h.service.ListMembers(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron obtener los miembros"})
		return
	}

	c.JSON(http.StatusOK, members)
}

func (h *Handler) CreateMember(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	m, err := h.service.CreateMember(c.Request.Context(), gymID, req)
	if err != nil {
		if errors.Is(err, ErrBadMembershipEnd) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Fecha de fin de membresía inválida"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo crear el miembro"})
		return
	}

	c.JSON(http.StatusCreated, m)
}

func (h *Handler) UpdateMember(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "ID de miembro inválido"})
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	m, err := h.service.UpdateMember(c.Request.Context(), gymID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMemberNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Miembro no encontrado"})
		case errors.Is(err, ErrBadMembershipEnd):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Fecha de fin de membresía inválida"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo actualizar el miembro"})
		}
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteMember(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "ID de miembro inválido"})
		return
	}

	if err := h.service.DeleteMember(c.Request.Context(), gymID, id); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Miembro no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo eliminar el miembro"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Miembro eliminado"})
}

// RecordPurchase persists a checkout server-side, keyed by the session
// account rather than browser storage.
func (h *Handler) RecordPurchase(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	p, err := h.service.RecordPurchase(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo registrar la compra"})
		return
	}

	metrics.MembershipPurchasesTotal.WithLabelValues(p.PlanName).Inc()
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) ListPurchases(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	purchases, err := h.service.ListPurchases(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron obtener las compras"})
		return
	}

	c.JSON(http.StatusOK, purchases)
}
