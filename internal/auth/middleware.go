package auth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	ctxGymIDKey     = "gym_id"
	ctxAdminCodeKey = "admin_code"
	ctxUserIDKey    = "user_id"
	ctxIdentityKey  = "gym_identity_source"
)

// GymIdentity is the tenant identity a middleware resolved for the request.
// Source is "session" for the primary cookie and "access" for the
// gym_access_<id> fallback.
type GymIdentity struct {
	GymID  int
	Source string
}

// ResolveGymIdentity derives the tenant identity from the request cookies:
// the primary gym_session cookie first, then a scan over every
// gym_access_<id> cookie until one validates. Returns nil when neither
// yields a usable identity.
func ResolveGymIdentity(c *gin.Context, secret string) *GymIdentity {
	if cookie, err := c.Cookie(GymSessionCookie); err == nil && cookie != "" {
		if claims, err := ValidateTokenOfType(cookie, secret, TokenTypeGym); err == nil && claims.GymID > 0 {
			return &GymIdentity{GymID: claims.GymID, Source: "session"}
		}
	}

	for _, cookie := range c.Request.Cookies() {
		gymID, ok := GymIDFromAccessCookieName(cookie.Name)
		if !ok {
			continue
		}
		claims, err := ValidateTokenOfType(cookie.Value, secret, TokenTypeGymAccess)
		if err != nil || claims.GymID != gymID {
			continue
		}
		return &GymIdentity{GymID: gymID, Source: "access"}
	}

	return nil
}

// RequireGymIdentity guards tenant-scoped admin routes. The resolved identity
// must match the :gymId path segment: a mismatched primary session is a 403
// so URL editing cannot reach another tenant, and no identity at all is a 401.
func RequireGymIdentity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		pathGymID, err := strconv.Atoi(c.Param("gymId"))
		if err != nil || pathGymID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de gimnasio inválido"})
			c.Abort()
			return
		}

		identity := resolveForGym(c, secret, pathGymID)
		if identity == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
			c.Abort()
			return
		}

		if identity.GymID != pathGymID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Sesión de otro gimnasio"})
			c.Abort()
			return
		}

		c.Set(ctxGymIDKey, identity.GymID)
		c.Set(ctxIdentityKey, identity.Source)
		c.Next()
	}
}

// resolveForGym prefers the primary session even when it belongs to another
// tenant (the caller turns the mismatch into a 403), and only falls back to
// the access cookie matching the requested gym.
func resolveForGym(c *gin.Context, secret string, gymID int) *GymIdentity {
	if cookie, err := c.Cookie(GymSessionCookie); err == nil && cookie != "" {
		if claims, err := ValidateTokenOfType(cookie, secret, TokenTypeGym); err == nil && claims.GymID > 0 {
			return &GymIdentity{GymID: claims.GymID, Source: "session"}
		}
	}

	name := GymAccessCookiePrefix + strconv.Itoa(gymID)
	if cookie, err := c.Cookie(name); err == nil && cookie != "" {
		if claims, err := ValidateTokenOfType(cookie, secret, TokenTypeGymAccess); err == nil && claims.GymID == gymID {
			return &GymIdentity{GymID: gymID, Source: "access"}
		}
	}

	return nil
}

// RequireAnyGymIdentity guards admin routes that are not bound to a path
// tenant (the stats endpoint), accepting whichever identity the cookies
// yield.
func RequireAnyGymIdentity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := ResolveGymIdentity(c, secret)
		if identity == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
			c.Abort()
			return
		}

		c.Set(ctxGymIDKey, identity.GymID)
		c.Set(ctxIdentityKey, identity.Source)
		c.Next()
	}
}

// RequireGymSession guards routes needing the primary session specifically
// (the "me" endpoint and password changes); the access fallback is not
// enough there.
func RequireGymSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(GymSessionCookie)
		if err != nil || cookie == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
			c.Abort()
			return
		}

		claims, err := ValidateTokenOfType(cookie, secret, TokenTypeGym)
		if err != nil {
			status := http.StatusUnauthorized
			msg := "Sesión inválida"
			if errors.Is(err, ErrTokenExpired) {
				msg = "Sesión expirada"
			}
			c.JSON(status, gin.H{"error": msg})
			c.Abort()
			return
		}

		c.Set(ctxGymIDKey, claims.GymID)
		c.Set(ctxAdminCodeKey, claims.AdminCode)
		c.Next()
	}
}

// RequireUserSession guards member-facing routes.
func RequireUserSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(UserSessionCookie)
		if err != nil || cookie == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
			c.Abort()
			return
		}

		claims, err := ValidateTokenOfType(cookie, secret, TokenTypeMember)
		if err != nil || claims.UserID <= 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión inválida"})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Next()
	}
}

func GetGymID(c *gin.Context) (int, bool) {
	v, exists := c.Get(ctxGymIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

func GetUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
