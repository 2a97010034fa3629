package auth

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	GymSessionCookie      = "gym_session"
	GymAccessCookiePrefix = "gym_access_"
	UserSessionCookie     = "tessalp_session"
)

func secureCookies() bool {
	return os.Getenv("APP_ENV") == "production"
}

func setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", secureCookies(), true)
}

func SetGymSessionCookie(c *gin.Context, token string) {
	setCookie(c, GymSessionCookie, token, int(GymSessionTTL.Seconds()))
}

func ClearGymSessionCookie(c *gin.Context) {
	setCookie(c, GymSessionCookie, "", -1)
}

func SetGymAccessCookie(c *gin.Context, gymID int, token string) {
	setCookie(c, fmt.Sprintf("%s%d", GymAccessCookiePrefix, gymID), token, int(GymAccessTTL.Seconds()))
}

func SetUserSessionCookie(c *gin.Context, token string) {
	setCookie(c, UserSessionCookie, token, int(UserSessionTTL.Seconds()))
}

func ClearUserSessionCookie(c *gin.Context) {
	setCookie(c, UserSessionCookie, "", -1)
}

// GymIDFromAccessCookieName extracts the tenant id from a gym_access_<id>
// cookie name. Returns false for any other cookie.
func GymIDFromAccessCookieName(name string) (int, bool) {
	if !strings.HasPrefix(name, GymAccessCookiePrefix) {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimPrefix(name, GymAccessCookiePrefix))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
