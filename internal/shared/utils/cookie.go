package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campus-pulse/campuspulse/internal/shared/config"
)

// SetSessionCookie writes the signed session token as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, token string, maxAge time.Duration) {
	c.SetSameSite(ParseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		cookieConfig.Name,
		token,
		int(maxAge.Seconds()),
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

func ClearSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(ParseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		cookieConfig.Name,
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

func GetCookie(c *gin.Context, name string) string {
	value, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return value
}

// ParseSameSite converts string to http.SameSite, defaulting to Lax.
func ParseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
