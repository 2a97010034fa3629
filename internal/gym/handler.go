package gym

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

// @Summary      List gyms
// @Tags         gyms
// @Produce      json
// @Success      200 {array} gym.Gym
// @Router       /api/gyms [get]
func (h *Handler) ListGyms(c *gin.Context) {
	gyms, err := h.service.GetAllGyms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron obtener los gimnasios"})
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// @Summary      Create a gym
// @Tags         gyms
// @Accept       json
// @Produce      json
// @Success      201 {object} gym.Gym
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /api/gyms [post]
func (h *Handler) CreateGym(c *gin.Context) {
	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	created, err := h.service.CreateGym(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Ya existe un gimnasio con este slug"})
			return
		}
		logger.Error("failed to create gym", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo crear el gimnasio"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary      Get a gym by id
// @Tags         gyms
// @Produce      json
// @Success      200 {object} gym.Gym
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/gyms/{gymId} [get]
func (h *Handler) GetGym(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("gymId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "ID de gimnasio inválido"})
		return
	}

	g, err := h.service.GetGymByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gimnasio no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo obtener el gimnasio"})
		return
	}

	c.JSON(http.StatusOK, g)
}

// @Summary      Update a gym
// @Tags         gyms
// @Accept       json
// @Produce      json
// @Success      200 {object} gym.Gym
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /api/gyms/{gymId} [put]
func (h *Handler) UpdateGym(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("gymId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "ID de gimnasio inválido"})
		return
	}

	var req UpdateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	updated, err := h.service.UpdateGym(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrGymNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gimnasio no encontrado"})
		case errors.Is(err, ErrSlugTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Ya existe un gimnasio con este slug"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo actualizar el gimnasio"})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ResolvePublicGym serves the public tenant lookup: the path segment may be a
// slug, a slug variant, a numeric id or a name fragment.
func (h *Handler) ResolvePublicGym(c *gin.Context) {
	g, err := h.service.Resolve(c.Request.Context(), c.Param("gymId"))
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gimnasio no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo obtener el gimnasio"})
		return
	}

	c.JSON(http.StatusOK, g.Public())
}

// @Summary      Gym admin login
// @Tags         gym-auth
// @Accept       json
// @Produce      json
// @Success      200 {object} api.MessageResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /api/gym/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	g, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		metrics.GymLoginsTotal.WithLabelValues("failure").Inc()
		switch {
		case errors.Is(err, ErrPasswordNotSet):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "La contraseña no está configurada. Contacta al administrador."})
		case errors.Is(err, ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Código de administrador o contraseña incorrectos"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo completar el inicio de sesión"})
		}
		return
	}

	token, err := auth.GenerateGymToken(g.ID, g.AdminCode, h.authSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo completar el inicio de sesión"})
		return
	}

	auth.SetGymSessionCookie(c, token)
	metrics.GymLoginsTotal.WithLabelValues("success").Inc()

	c.JSON(http.StatusOK, gin.H{
		"message": "Inicio de sesión exitoso",
		"gym": gin.H{
			"id":        g.ID,
			"name":      g.Name,
			"slug":      g.Slug,
			"adminCode": g.AdminCode,
		},
	})
}

// @Summary      Gym admin logout
// @Tags         gym-auth
// @Produce      json
// @Success      200 {object} api.MessageResponse
// @Router       /api/gym/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	auth.ClearGymSessionCookie(c)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Sesión cerrada"})
}

// Me returns the tenant bound to the current primary session.
func (h *Handler) Me(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	g, err := h.service.GetGymByID(c.Request.Context(), gymID)
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo obtener el gimnasio"})
		return
	}

	c.JSON(http.StatusOK, g)
}

// VerifyAccess checks the shared access key and sets the fallback
// gym_access_<id> cookie consulted when no primary session exists.
func (h *Handler) VerifyAccess(c *gin.Context) {
	gymID, err := strconv.Atoi(c.Param("gymId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "ID de gimnasio inválido"})
		return
	}

	var req VerifyAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	g, err := h.service.VerifyAccess(c.Request.Context(), gymID, req.AccessID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAccessID):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "ID de acceso incorrecto"})
		case errors.Is(err, ErrGymNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gimnasio no encontrado"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo verificar el acceso"})
		}
		return
	}

	token, err := auth.GenerateGymAccessToken(g.ID, h.authSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo verificar el acceso"})
		return
	}

	auth.SetGymAccessCookie(c, g.ID, token)

	c.JSON(http.StatusOK, gin.H{
		"message": "Acceso verificado exitosamente",
		"gym": gin.H{
			"id":   g.ID,
			"name": g.Name,
		},
	})
}

// ChangePassword updates the tenant admin password; the current password is
// required once one is set.
func (h *Handler) ChangePassword(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), gymID, req); err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Contraseña actual incorrecta"})
		case errors.Is(err, ErrGymNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gimnasio no encontrado"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudo actualizar la contraseña"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Contraseña actualizada"})
}

// @Summary      Weekly operating hours
// @Tags         schedules
// @Produce      json
// @Success      200 {array} gym.Schedule
// @Router       /api/gym/{gymId}/schedules [get]
func (h *Handler) GetSchedules(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	schedules, err := h.service.GetSchedules(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron obtener los horarios"})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// UpdateSchedules replaces the full weekly set.
func (h *Handler) UpdateSchedules(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No autorizado"})
		return
	}

	var req UpdateSchedulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondValidationError(c, err)
		return
	}

	schedules, err := h.service.ReplaceSchedules(c.Request.Context(), gymID, req)
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gimnasio no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron actualizar los horarios"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Horarios actualizados exitosamente",
		"schedules": schedules,
	})
}

// PublicSchedules lists hours for a tenant resolved by slug or id, no
// session required.
func (h *Handler) PublicSchedules(c *gin.Context) {
	g, err := h.service.Resolve(c.Request.Context(), c.Param("gymId"))
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gimnasio no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron obtener los horarios"})
		return
	}

	schedules, err := h.service.GetSchedules(c.Request.Context(), g.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "No se pudieron obtener los horarios"})
		return
	}

	c.JSON(http.StatusOK, schedules)
}
