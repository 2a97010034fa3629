package coach

import (
	"errors"
	"net/http"

	"tessalp/internal/api"
	"tessalp/internal/auth"
	"tessalp/internal/logger"

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

// @Summary      Register a coach account
// @Tags         coach
// @Accept       json
// @Produce      json
// @Success      201 {object} coach.ProfileWithAccount
// @Failure      409 {object} api.ErrorResponse
// @Router       /api/coach/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	profile, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "El correo ya está registrado"})
			return
		}
		logger.Error("failed to register coach", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo crear la cuenta"})
		return
	}

	token, err := auth.GenerateUserToken(profile.AccountID, h.authSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo crear la sesión"})
		return
	}
	auth.SetUserSessionCookie(c, token)

	c.JSON(http.StatusCreated, profile)
}

// @Summary      Coach login
// @Tags         coach
// @Router       /api/coach/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	profile, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrCoachNotFound) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Credenciales inválidas"})
			return
		}
		logger.Error("coach login failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo iniciar sesión"})
		return
	}

	token, err := auth.GenerateUserToken(profile.AccountID, h.authSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo crear la sesión"})
		return
	}
	auth.SetUserSessionCookie(c, token)

	c.JSON(http.StatusOK, profile)
}

// @Summary      Coach dashboard
// @Tags         coach
// @Router       /api/coach/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	accountID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	dashboard, err := h.service.Dashboard(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, ErrCoachNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Entrenador no encontrado"})
			return
		}
		logger.Error("failed to load coach dashboard", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo cargar el panel"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
